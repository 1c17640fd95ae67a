// SPDX-License-Identifier: GPL-2.0-or-later

package app

import (
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"vrplay/input"
	"vrplay/window"
)

// pollEvents drains the SDL queue into this frame's input state.
func (h *host) pollEvents() {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			h.quit = true
		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				break
			}
			a := input.KeyAction(e.Keysym.Sym)
			if e.State == sdl.PRESSED {
				h.inputs.Press(a)
			} else {
				h.inputs.Release(a)
			}
		case *sdl.ControllerButtonEvent:
			a := input.ButtonAction(e.Button)
			if e.State == sdl.PRESSED {
				h.inputs.Press(a)
			} else {
				h.inputs.Release(a)
			}
		case *sdl.ControllerDeviceEvent:
			if e.GetType() == sdl.CONTROLLERDEVICEADDED {
				if c := sdl.GameControllerOpen(int(e.Which)); c == nil {
					log.Printf("input: open controller %d: %v", e.Which, sdl.GetError())
				}
			}
		case *sdl.TouchFingerEvent:
			// A tap anywhere opens the menu, same as on a headset
			// without buttons.
			if e.Type == sdl.FINGERDOWN {
				h.inputs.Press(input.ToggleMenu)
			}
		case *sdl.MouseButtonEvent:
			if e.State == sdl.PRESSED && e.Button == sdl.BUTTON_LEFT {
				h.inputs.Press(input.ToggleMenu)
			}
		case *sdl.WindowEvent:
			h.windowEvent(e)
		}
	}
}

func (h *host) windowEvent(e *sdl.WindowEvent) {
	switch e.Event {
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		w, dh := window.DrawableSize()
		if err := h.renderer.Resize(w, dh); err != nil {
			// Transient surface trouble: skip presenting until the
			// next successful resize.
			log.Printf("render: resize: %v", err)
			window.SetSkipUpdates(true)
			return
		}
		window.SetSkipUpdates(false)
	case sdl.WINDOWEVENT_MINIMIZED:
		window.SetSkipUpdates(true)
	case sdl.WINDOWEVENT_RESTORED, sdl.WINDOWEVENT_EXPOSED:
		window.SetSkipUpdates(false)
	}
}
