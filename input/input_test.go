// SPDX-License-Identifier: GPL-2.0-or-later

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyActionTable(t *testing.T) {
	assert.Equal(t, TogglePause, KeyAction(sdl.K_SPACE))
	assert.Equal(t, Recenter, KeyAction(sdl.K_r))
	assert.Equal(t, None, KeyAction(sdl.K_F12))
}

func TestButtonActionTable(t *testing.T) {
	assert.Equal(t, Recenter, ButtonAction(sdl.CONTROLLER_BUTTON_Y))
	assert.Equal(t, None, ButtonAction(sdl.CONTROLLER_BUTTON_GUIDE))
}

func TestEdgesFireOnce(t *testing.T) {
	s := NewState()
	s.Press(TogglePause)
	assert.True(t, s.WentDown(TogglePause))
	assert.False(t, s.WentDown(TogglePause), "an edge is consumed on read")
}

func TestEdgesDropAtFrameEnd(t *testing.T) {
	s := NewState()
	s.Press(Recenter)
	s.EndFrame()
	assert.False(t, s.WentDown(Recenter))
}

func TestZoomIsHeld(t *testing.T) {
	s := NewState()
	assert.Equal(t, float32(0), s.Zoom())
	s.Press(ZoomIn)
	s.EndFrame()
	assert.Equal(t, float32(1), s.Zoom(), "zoom keeps acting while held")
	s.Press(ZoomOut)
	assert.Equal(t, float32(0), s.Zoom(), "opposing directions cancel")
	s.Release(ZoomIn)
	assert.Equal(t, float32(-1), s.Zoom())
	s.Release(ZoomOut)
	assert.Equal(t, float32(0), s.Zoom())
}
