// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"

	"vrplay/glh"
)

// overlayPass shows the interface texture. The texture has a fixed
// resolution independent of the screen and is repainted every frame,
// so the scene pass always samples a valid image. In mono mode the
// same texture is additionally drawn straight to the window at native
// resolution.
type overlayPass struct {
	vao  *glh.VertexArray
	vbo  *glh.Buffer
	ebo  *glh.Buffer
	quad *glh.Buffer

	sceneProg  *glh.Program
	projection int32
	modelview  int32
	sceneTex   int32

	screenProg *glh.Program
	screenTex  int32

	texture glh.Texture
	size    int32
}

func newOverlayPass(size int32) (*overlayPass, error) {
	o := &overlayPass{size: size}
	elements := []uint32{
		0, 1, 2,
		2, 3, 0,
	}
	// In front of the video surface, slightly smaller than it.
	scene := []float32{
		// vertex, tex
		-1.2, -1.2, -1.8, 0, 1,
		1.2, -1.2, -1.8, 1, 1,
		1.2, 1.2, -1.8, 1, 0,
		-1.2, 1.2, -1.8, 0, 0,
	}
	screen := []float32{
		// vertex, tex
		-1, -1, 0, 1,
		1, -1, 1, 1,
		1, 1, 1, 0,
		-1, 1, 0, 0,
	}
	o.vao = glh.NewVertexArray()
	o.vbo = glh.NewBuffer(gl.ARRAY_BUFFER)
	o.vbo.Bind()
	o.vbo.SetData(4*len(scene), glh.Ptr(scene))
	o.quad = glh.NewBuffer(gl.ARRAY_BUFFER)
	o.quad.Bind()
	o.quad.SetData(4*len(screen), glh.Ptr(screen))
	o.ebo = glh.NewBuffer(gl.ELEMENT_ARRAY_BUFFER)
	o.ebo.Bind()
	o.ebo.SetData(4*len(elements), glh.Ptr(elements))

	var err error
	o.sceneProg, err = glh.NewProgram(vertexSceneSource, fragmentOverlaySource)
	if err != nil {
		return nil, errors.Wrap(err, "overlay scene program")
	}
	o.projection = o.sceneProg.GetUniformLocation("projection")
	o.modelview = o.sceneProg.GetUniformLocation("modelview")
	o.sceneTex = o.sceneProg.GetUniformLocation("tex")
	o.screenProg, err = glh.NewProgram(vertexScreenSource, fragmentOverlaySource)
	if err != nil {
		return nil, errors.Wrap(err, "overlay screen program")
	}
	o.screenTex = o.screenProg.GetUniformLocation("tex")

	o.texture = glh.NewTexture2D()
	o.texture.Bind()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, size, size,
		0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return o, nil
}

// Upload replaces the whole overlay image. pixels must be size*size
// RGBA bytes.
func (o *overlayPass) Upload(pixels []byte) {
	if len(pixels) < int(o.size)*int(o.size)*4 {
		return
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	o.texture.Bind()
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, o.size, o.size,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (o *overlayPass) DrawScene(projection, view *glh.Matrix) {
	o.sceneProg.Use()
	o.vao.Bind()
	o.ebo.Bind()
	o.vbo.Bind()
	gl.EnableVertexAttribArray(0)
	defer gl.DisableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	defer gl.DisableVertexAttribArray(1)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))
	projection.SetAsUniform(o.projection)
	view.SetAsUniform(o.modelview)
	gl.ActiveTexture(gl.TEXTURE0)
	o.texture.Bind()
	gl.Uniform1i(o.sceneTex, 0)

	gl.Enable(gl.BLEND)
	defer gl.Disable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// DrawScreen paints the overlay over the full window.
func (o *overlayPass) DrawScreen() {
	o.screenProg.Use()
	o.vao.Bind()
	o.ebo.Bind()
	o.quad.Bind()
	gl.EnableVertexAttribArray(0)
	defer gl.DisableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	defer gl.DisableVertexAttribArray(1)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.ActiveTexture(gl.TEXTURE0)
	o.texture.Bind()
	gl.Uniform1i(o.screenTex, 0)

	gl.Enable(gl.BLEND)
	defer gl.Disable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
}
