// SPDX-License-Identifier: GPL-2.0-or-later

package app

import (
	"log"

	"vrplay/math/quat"
	"vrplay/render"
	"vrplay/ui"
	"vrplay/window"
)

// frame runs one display refresh. The step order is a contract:
// source swaps land before the interface is evaluated, interface
// intents land before orientation and video are read, and everything
// is settled before the single render call.
func (h *host) frame() {
	// 1. Apply a source picked last frame.
	if h.pendingSource != "" {
		src := h.pendingSource
		h.pendingSource = ""
		h.decoder.Start(src)
		h.audio.Start(src)
		h.session = h.decoder.Session()
		log.Printf("app: playing %s, session %s", src, h.session)
	}

	// 2. Evaluate the interface.
	intents := h.ui.Frame(h.inputs, ui.Playback{
		PositionUs: h.decoder.PositionUs(),
		DurationUs: h.decoder.DurationUs(),
		Paused:     h.decoder.Paused(),
		VRMode:     h.renderer.VRMode(),
	})

	// 3. Apply its intents.
	h.applyIntents(intents)

	// 4. Orientation, frozen to identity when tracking is off.
	orientation := quat.Identity()
	if intents.GyroEnabled && h.tracker != nil {
		orientation = h.tracker.Orientation()
	}

	// 5. Pull at most one new decoded frame and upload it.
	if f, ok := h.decoder.Frame(); ok {
		h.renderer.UploadFrame(f)
	}

	// 6. One render call.
	h.renderer.UploadOverlay(h.ui.Pixels())
	scale := intents.ContentScale
	if p, ok := h.panels.Get(screenPanel); ok {
		scale *= p.Scale
	}
	h.renderer.Render(orientation, render.Params{
		LensRadius:       intents.LensRadius,
		LensCenterOffset: intents.LensCenterOffset,
		ContentScale:     scale,
		IPD:              intents.IPD,
	})

	// 7. Present and request the next frame.
	window.EndRendering()
	h.inputs.EndFrame()
}

func (h *host) applyIntents(in ui.Intents) {
	if in.Quit {
		h.quit = true
	}
	if in.Recenter && h.tracker != nil {
		h.tracker.Recenter()
	}
	if in.TogglePause {
		h.decoder.TogglePause()
		if h.decoder.Paused() {
			h.audio.Pause()
		} else {
			h.audio.Resume()
		}
	}
	if in.SeekByUs != 0 {
		h.decoder.SeekBy(in.SeekByUs)
		h.audio.SeekMs(h.decoder.PositionUs() / 1000)
	}
	if in.PickFile != "" {
		h.pendingSource = in.PickFile
	}
	// ExitVR is the explicit request; ToggleVR carries it too when
	// already in VR, so it must not be applied twice.
	switch {
	case in.ExitVR:
		h.renderer.SetVRMode(false)
	case in.ToggleVR:
		h.renderer.ToggleVRMode()
	}
	if in.VolumeUp {
		h.audio.VolumeUp()
	}
	if in.VolumeDown {
		h.audio.VolumeDown()
	}
}
