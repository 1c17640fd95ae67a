// SPDX-License-Identifier: GPL-2.0-or-later

package ui

// Color is straight, non premultiplied RGBA.
type Color struct {
	R, G, B, A byte
}

// Canvas is the fixed resolution image the interface is painted into
// each frame. The renderer uploads Pix as the overlay texture.
type Canvas struct {
	Size int
	Pix  []byte
}

func NewCanvas(size int) *Canvas {
	return &Canvas{
		Size: size,
		Pix:  make([]byte, size*size*4),
	}
}

// Clear makes the whole canvas fully transparent.
func (c *Canvas) Clear() {
	for i := range c.Pix {
		c.Pix[i] = 0
	}
}

// FillRect blends a rectangle over the canvas. Coordinates are
// clipped; alpha below 255 mixes with what is already painted.
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	x0, y0 := clip(x, c.Size), clip(y, c.Size)
	x1, y1 := clip(x+w, c.Size), clip(y+h, c.Size)
	a := int(col.A)
	for row := y0; row < y1; row++ {
		base := (row*c.Size + x0) * 4
		for px := x0; px < x1; px++ {
			p := c.Pix[base : base+4 : base+4]
			p[0] = mix(p[0], col.R, a)
			p[1] = mix(p[1], col.G, a)
			p[2] = mix(p[2], col.B, a)
			if int(p[3])+a > 255 {
				p[3] = 255
			} else {
				p[3] += byte(a)
			}
			base += 4
		}
	}
}

// FrameRect draws a one pixel wide border.
func (c *Canvas) FrameRect(x, y, w, h int, col Color) {
	c.FillRect(x, y, w, 1, col)
	c.FillRect(x, y+h-1, w, 1, col)
	c.FillRect(x, y, 1, h, col)
	c.FillRect(x+w-1, y, 1, h, col)
}

func clip(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func mix(dst, src byte, a int) byte {
	return byte((int(src)*a + int(dst)*(255-a)) / 255)
}
