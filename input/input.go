// SPDX-License-Identifier: GPL-2.0-or-later

package input

import "github.com/veandco/go-sdl2/sdl"

// Action is a logical control independent of the physical source that
// raised it.
type Action int

const (
	None Action = iota
	TogglePause
	SeekForward
	SeekBack
	Recenter
	ToggleVR
	ToggleMenu
	MenuUp
	MenuDown
	MenuSelect
	VolumeUp
	VolumeDown
	ZoomIn
	ZoomOut
	Quit
)

// One table per device class, built once, consulted uniformly.
var keyActions = map[sdl.Keycode]Action{
	sdl.K_SPACE:     TogglePause,
	sdl.K_RIGHT:     SeekForward,
	sdl.K_LEFT:      SeekBack,
	sdl.K_r:         Recenter,
	sdl.K_v:         ToggleVR,
	sdl.K_RETURN:    MenuSelect,
	sdl.K_UP:        MenuUp,
	sdl.K_DOWN:      MenuDown,
	sdl.K_TAB:       ToggleMenu,
	sdl.K_m:         ToggleMenu,
	sdl.K_PLUS:      VolumeUp,
	sdl.K_EQUALS:    VolumeUp,
	sdl.K_MINUS:     VolumeDown,
	sdl.K_PAGEUP:    ZoomIn,
	sdl.K_PAGEDOWN:  ZoomOut,
	sdl.K_ESCAPE:    Quit,
	sdl.K_q:         Quit,
	sdl.K_BACKSPACE: ToggleVR,
}

var buttonActions = map[uint8]Action{
	sdl.CONTROLLER_BUTTON_A:             MenuSelect,
	sdl.CONTROLLER_BUTTON_B:             ToggleMenu,
	sdl.CONTROLLER_BUTTON_X:             TogglePause,
	sdl.CONTROLLER_BUTTON_Y:             Recenter,
	sdl.CONTROLLER_BUTTON_START:         ToggleVR,
	sdl.CONTROLLER_BUTTON_DPAD_UP:       MenuUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     MenuDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     SeekBack,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    SeekForward,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  VolumeDown,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: VolumeUp,
}

// KeyAction maps a keyboard keycode to its logical action.
func KeyAction(code sdl.Keycode) Action {
	return keyActions[code]
}

// ButtonAction maps a game controller button to its logical action.
func ButtonAction(button uint8) Action {
	return buttonActions[button]
}

// State collects the one-shot action edges of the current frame and
// the held axes that act continuously.
type State struct {
	pressed map[Action]bool

	zoomHeld map[Action]bool
}

func NewState() *State {
	return &State{
		pressed:  make(map[Action]bool),
		zoomHeld: make(map[Action]bool),
	}
}

// Press records a one-shot edge for this frame.
func (s *State) Press(a Action) {
	if a == None {
		return
	}
	s.pressed[a] = true
	if a == ZoomIn || a == ZoomOut {
		s.zoomHeld[a] = true
	}
}

// Release ends a held action.
func (s *State) Release(a Action) {
	if a == ZoomIn || a == ZoomOut {
		delete(s.zoomHeld, a)
	}
}

// WentDown reports and consumes a one-shot edge.
func (s *State) WentDown(a Action) bool {
	if s.pressed[a] {
		delete(s.pressed, a)
		return true
	}
	return false
}

// Zoom returns the held zoom direction: +1, -1 or 0.
func (s *State) Zoom() float32 {
	switch {
	case s.zoomHeld[ZoomIn] && !s.zoomHeld[ZoomOut]:
		return 1
	case s.zoomHeld[ZoomOut] && !s.zoomHeld[ZoomIn]:
		return -1
	}
	return 0
}

// EndFrame drops edges nobody consumed so they do not fire later.
func (s *State) EndFrame() {
	for a := range s.pressed {
		delete(s.pressed, a)
	}
}
