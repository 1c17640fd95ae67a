// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
)

// Framebuffer is an offscreen render target with a single RGBA8 color
// attachment and no depth buffer.
type Framebuffer struct {
	fbo    uint32
	color  *texture2D
	width  int32
	height int32
}

func NewFramebuffer(width, height int32) (*Framebuffer, error) {
	f := &Framebuffer{
		width:  width,
		height: height,
	}
	gl.GenFramebuffers(1, &f.fbo)
	runtime.AddCleanup(f, deleteFramebuffer, f.fbo)

	f.color = NewTexture2D()
	f.color.Bind()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height,
		0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0,
		gl.TEXTURE_2D, uint32(f.color.ID()), 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return f, nil
}

func deleteFramebuffer(fbo uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteFramebuffers(1, &fbo)
	})
}

func (f *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)
}

// BindDefault restores the window framebuffer.
func BindDefault() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (f *Framebuffer) Color() Texture {
	return f.color
}

func (f *Framebuffer) Size() (int32, int32) {
	return f.width, f.height
}
