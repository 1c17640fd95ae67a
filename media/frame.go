// SPDX-License-Identifier: GPL-2.0-or-later

package media

import "sync"

// Frame is one decoded picture in 4:2:0 layout: a full resolution
// luma plane and an interleaved UV plane at half resolution on both
// axes (NV12).
type Frame struct {
	Y           []byte
	UV          []byte
	Width       int32
	Height      int32
	TimestampUs int64
}

// wholePlanes reports whether both planes cover the full picture for
// the frame's claimed dimensions.
func wholePlanes(f *Frame) bool {
	n := int(f.Width) * int(f.Height)
	return len(f.Y) >= n && len(f.UV) >= n/2
}

// frameBuffer is the single slot between the decode worker and the
// renderer. Delivery is at most once per stored frame: the dirty flag
// is cleared on take, frames may be overwritten before being read,
// but a reader never observes a partial copy.
type frameBuffer struct {
	mu    sync.Mutex
	frame Frame
	dirty bool
}

func (b *frameBuffer) store(y, uv []byte, width, height int32, ptsUs int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if cap(b.frame.Y) < len(y) {
		b.frame.Y = make([]byte, len(y))
	}
	if cap(b.frame.UV) < len(uv) {
		b.frame.UV = make([]byte, len(uv))
	}
	b.frame.Y = b.frame.Y[:len(y)]
	b.frame.UV = b.frame.UV[:len(uv)]
	copy(b.frame.Y, y)
	copy(b.frame.UV, uv)
	b.frame.Width = width
	b.frame.Height = height
	b.frame.TimestampUs = ptsUs
	b.dirty = true
}

// take returns the most recent frame if it has not been consumed yet.
// The returned planes are copies; the slot can be overwritten freely
// afterwards.
func (b *frameBuffer) take() (Frame, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.dirty || len(b.frame.Y) == 0 {
		return Frame{}, false
	}
	b.dirty = false
	f := Frame{
		Y:           append([]byte(nil), b.frame.Y...),
		UV:          append([]byte(nil), b.frame.UV...),
		Width:       b.frame.Width,
		Height:      b.frame.Height,
		TimestampUs: b.frame.TimestampUs,
	}
	return f, true
}

func (b *frameBuffer) clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frame = Frame{}
	b.dirty = false
}
