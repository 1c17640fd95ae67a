// SPDX-License-Identifier: GPL-2.0-or-later

package gametime

import (
	"time"

	"vrplay/cvars"
	"vrplay/math"
)

var (
	startTime = time.Now()
)

// FrameTime throttles the render loop to host_maxfps and tracks the
// elapsed time per frame.
type FrameTime struct {
	time       float64
	oldTime    float64
	frameTime  float64
	frameCount int
}

func (h *FrameTime) Time() float64      { return h.time }
func (h *FrameTime) FrameTime() float64 { return h.frameTime }
func (h *FrameTime) FrameCount() int    { return h.frameCount }
func (h *FrameTime) FrameIncrease()     { h.frameCount++ }

// UpdateTime advances the host clock. Returns false if running the
// frame now would exceed host_maxfps.
func (h *FrameTime) UpdateTime() bool {
	h.time = time.Since(startTime).Seconds()
	maxFPS := math.Clamp(10.0, float64(cvars.HostMaxFps.Value()), 1000.0)
	if h.time-h.oldTime < 1/maxFPS {
		return false
	}
	h.frameTime = h.time - h.oldTime
	h.oldTime = h.time
	h.frameTime = math.Clamp(0.0001, h.frameTime, 0.1)
	return true
}
