// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"

	"vrplay/glh"
	"vrplay/media"
)

// videoSurface owns the luma/chroma textures and the textured quad the
// decoded picture is shown on. The textures are recreated only when
// the source resolution changes; the old pair stays bound until the
// new pair is fully built.
type videoSurface struct {
	vao  *glh.VertexArray
	vbo  *glh.Buffer
	ebo  *glh.Buffer
	prog *glh.Program

	projection int32
	modelview  int32
	texLuma    int32
	texChroma  int32

	luma   glh.Texture
	chroma glh.Texture
	width  int32
	height int32
}

func newVideoSurface() (*videoSurface, error) {
	v := &videoSurface{}
	elements := []uint32{
		0, 1, 2,
		2, 3, 0,
	}
	// A quad in the view plane, 16:9 at unit scale, two units in
	// front of the camera. Texture rows are stored top down, so v is
	// flipped.
	vertices := []float32{
		// vertex, tex
		-1.78, -1, -2, 0, 1,
		1.78, -1, -2, 1, 1,
		1.78, 1, -2, 1, 0,
		-1.78, 1, -2, 0, 0,
	}
	v.vao = glh.NewVertexArray()
	v.vbo = glh.NewBuffer(gl.ARRAY_BUFFER)
	v.vbo.Bind()
	v.vbo.SetData(4*len(vertices), glh.Ptr(vertices))
	v.ebo = glh.NewBuffer(gl.ELEMENT_ARRAY_BUFFER)
	v.ebo.Bind()
	v.ebo.SetData(4*len(elements), glh.Ptr(elements))
	var err error
	v.prog, err = glh.NewProgram(vertexSceneSource, fragmentVideoSource)
	if err != nil {
		return nil, errors.Wrap(err, "video program")
	}
	v.projection = v.prog.GetUniformLocation("projection")
	v.modelview = v.prog.GetUniformLocation("modelview")
	v.texLuma = v.prog.GetUniformLocation("tex_luma")
	v.texChroma = v.prog.GetUniformLocation("tex_chroma")
	return v, nil
}

// Upload moves one decoded frame into GPU memory. Called at the start
// of a frame, before any draw references the textures.
func (v *videoSurface) Upload(f media.Frame) {
	if f.Width <= 0 || f.Height <= 0 {
		return
	}
	if len(f.Y) < int(f.Width)*int(f.Height) ||
		len(f.UV) < int(f.Width)*int(f.Height)/2 {
		// Short planes would read out of bounds, drop the frame.
		return
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if v.luma == nil || v.width != f.Width || v.height != f.Height {
		luma := glh.NewTexture2D()
		luma.Bind()
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, f.Width, f.Height,
			0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(f.Y))
		videoTexParams()
		chroma := glh.NewTexture2D()
		chroma.Bind()
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RG8, f.Width/2, f.Height/2,
			0, gl.RG, gl.UNSIGNED_BYTE, gl.Ptr(f.UV))
		videoTexParams()
		v.luma = luma
		v.chroma = chroma
		v.width = f.Width
		v.height = f.Height
		return
	}
	v.luma.Bind()
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, f.Width, f.Height,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(f.Y))
	v.chroma.Bind()
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, f.Width/2, f.Height/2,
		gl.RG, gl.UNSIGNED_BYTE, gl.Ptr(f.UV))
}

func videoTexParams() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func (v *videoSurface) Draw(projection, view *glh.Matrix, contentScale float32) {
	if v.luma == nil {
		return
	}
	model := glh.Identity()
	model.Scale(contentScale, contentScale, 1)
	if v.height > 0 {
		// Correct the unit quad's 16:9 shape to the source aspect.
		aspect := float32(v.width) / float32(v.height)
		model.Scale(aspect/1.78, 1, 1)
	}
	mv := glh.Mult(view, model)

	v.prog.Use()
	v.vao.Bind()
	v.ebo.Bind()
	v.vbo.Bind()
	gl.EnableVertexAttribArray(0)
	defer gl.DisableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	defer gl.DisableVertexAttribArray(1)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))
	projection.SetAsUniform(v.projection)
	mv.SetAsUniform(v.modelview)
	gl.ActiveTexture(gl.TEXTURE0)
	v.luma.Bind()
	gl.Uniform1i(v.texLuma, 0)
	gl.ActiveTexture(gl.TEXTURE1)
	v.chroma.Bind()
	gl.Uniform1i(v.texChroma, 1)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
}
