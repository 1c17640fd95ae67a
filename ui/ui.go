// SPDX-License-Identifier: GPL-2.0-or-later

package ui

import (
	"vrplay/cvars"
	"vrplay/input"
)

// Intents is what one frame of interface evaluation asks the rest of
// the player to do. Booleans are one-shot, the value fields always
// carry the current settings.
type Intents struct {
	Recenter    bool
	TogglePause bool
	SeekByUs    int64
	PickFile    string
	ToggleVR    bool
	ExitVR      bool
	VolumeUp    bool
	VolumeDown  bool
	Quit        bool

	ContentScale     float32
	LensRadius       float32
	LensCenterOffset float32
	IPD              float32
	GyroEnabled      bool
}

// Playback is the snapshot the interface paints from.
type Playback struct {
	PositionUs int64
	DurationUs int64
	Paused     bool
	VRMode     bool
}

const seekStepUs = 10 * 1_000_000

// UI is the immediate-mode interface: a playback bar plus an in-view
// file menu, repainted into its canvas every frame whether or not it
// is visible.
type UI struct {
	canvas   *Canvas
	menuOpen bool

	files    []string
	selected int
}

func New(textureSize int) *UI {
	return &UI{canvas: NewCanvas(textureSize)}
}

// SetFiles replaces the menu entries. Selection is clamped.
func (u *UI) SetFiles(files []string) {
	u.files = files
	if u.selected >= len(files) {
		u.selected = 0
	}
}

// Pixels is the canvas image of the most recent Frame call.
func (u *UI) Pixels() []byte { return u.canvas.Pix }

// Frame consumes this frame's input edges, paints the canvas and
// reports the resulting intents.
func (u *UI) Frame(in *input.State, pb Playback) Intents {
	out := Intents{
		ContentScale:     cvars.ContentScale.Value(),
		LensRadius:       cvars.LensRadius.Value(),
		LensCenterOffset: cvars.LensCenterOffset.Value(),
		IPD:              cvars.LensIPD.Value(),
		GyroEnabled:      cvars.GyroEnabled.Bool(),
	}

	if in.WentDown(input.ToggleMenu) {
		u.menuOpen = !u.menuOpen
	}
	if u.menuOpen {
		u.evalMenu(in, &out)
	} else {
		u.evalPlayback(in, &out)
	}
	if in.WentDown(input.ToggleVR) {
		out.ToggleVR = true
		if pb.VRMode {
			out.ExitVR = true
		}
	}
	if in.WentDown(input.Quit) {
		out.Quit = true
	}
	if zoom := in.Zoom(); zoom != 0 {
		scale := out.ContentScale + zoom*0.02
		if scale < 0.2 {
			scale = 0.2
		}
		if scale > 4 {
			scale = 4
		}
		cvars.ContentScale.SetValue(scale)
		out.ContentScale = scale
	}

	u.paint(pb)
	return out
}

func (u *UI) evalPlayback(in *input.State, out *Intents) {
	if in.WentDown(input.TogglePause) {
		out.TogglePause = true
	}
	if in.WentDown(input.SeekForward) {
		out.SeekByUs += seekStepUs
	}
	if in.WentDown(input.SeekBack) {
		out.SeekByUs -= seekStepUs
	}
	if in.WentDown(input.Recenter) {
		out.Recenter = true
	}
	if in.WentDown(input.VolumeUp) {
		out.VolumeUp = true
	}
	if in.WentDown(input.VolumeDown) {
		out.VolumeDown = true
	}
}

func (u *UI) evalMenu(in *input.State, out *Intents) {
	if len(u.files) == 0 {
		return
	}
	if in.WentDown(input.MenuUp) && u.selected > 0 {
		u.selected--
	}
	if in.WentDown(input.MenuDown) && u.selected < len(u.files)-1 {
		u.selected++
	}
	if in.WentDown(input.MenuSelect) {
		out.PickFile = u.files[u.selected]
		u.menuOpen = false
	}
}

var (
	colBar      = Color{30, 30, 36, 200}
	colProgress = Color{90, 160, 255, 255}
	colPaused   = Color{255, 190, 60, 255}
	colRow      = Color{40, 40, 48, 220}
	colRowSel   = Color{90, 160, 255, 230}
	colBorder   = Color{200, 200, 210, 255}
)

func (u *UI) paint(pb Playback) {
	c := u.canvas
	c.Clear()
	s := c.Size

	// Playback bar along the bottom.
	barH := s / 24
	barY := s - 2*barH
	c.FillRect(s/16, barY, s-s/8, barH, colBar)
	if pb.DurationUs > 0 {
		frac := float64(pb.PositionUs) / float64(pb.DurationUs)
		if frac > 1 {
			frac = 1
		}
		col := colProgress
		if pb.Paused {
			col = colPaused
		}
		c.FillRect(s/16, barY, int(float64(s-s/8)*frac), barH, col)
	}
	c.FrameRect(s/16, barY, s-s/8, barH, colBorder)

	if !u.menuOpen {
		return
	}
	// File menu rows in the center.
	rowH := s / 20
	top := s / 6
	width := s - s/4
	for i := range u.files {
		y := top + i*(rowH+2)
		if y+rowH > barY {
			break
		}
		col := colRow
		if i == u.selected {
			col = colRowSel
		}
		c.FillRect(s/8, y, width, rowH, col)
	}
	c.FrameRect(s/8-2, top-2, width+4, len(u.files)*(rowH+2)+2, colBorder)
}
