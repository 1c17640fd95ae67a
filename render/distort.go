// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"

	"vrplay/glh"
)

const (
	distortK1 = 0.25
	distortK2 = 0.15
)

// DistortionScale compensates the overall image scale of the barrel
// pass so that growing the lens radius does not push content out of
// the viewport. The radius is clamped at 1 to cap the zoom.
func DistortionScale(lensRadius float32) float32 {
	r := math32.Min(lensRadius, 1)
	r2 := r * r
	return 1 / (1 + distortK1*r2 + distortK2*r2*r2)
}

// distortPass warps the stereo scene texture onto the window with a
// radial barrel distortion, one lens center per half of the screen.
type distortPass struct {
	vao  *glh.VertexArray
	vbo  *glh.Buffer
	ebo  *glh.Buffer
	prog *glh.Program

	tex          int32
	lensRadius   int32
	centerOffset int32
	scaleFactor  int32
}

func newDistortPass() (*distortPass, error) {
	d := &distortPass{}
	elements := []uint32{
		0, 1, 2,
		2, 3, 0,
	}
	vertices := []float32{
		// vertex, tex
		-1, -1, 0, 0,
		1, -1, 1, 0,
		1, 1, 1, 1,
		-1, 1, 0, 1,
	}
	d.vao = glh.NewVertexArray()
	d.vbo = glh.NewBuffer(gl.ARRAY_BUFFER)
	d.vbo.Bind()
	d.vbo.SetData(4*len(vertices), glh.Ptr(vertices))
	d.ebo = glh.NewBuffer(gl.ELEMENT_ARRAY_BUFFER)
	d.ebo.Bind()
	d.ebo.SetData(4*len(elements), glh.Ptr(elements))
	var err error
	d.prog, err = glh.NewProgram(vertexScreenSource, fragmentDistortSource)
	if err != nil {
		return nil, errors.Wrap(err, "distortion program")
	}
	d.tex = d.prog.GetUniformLocation("tex")
	d.lensRadius = d.prog.GetUniformLocation("lens_radius")
	d.centerOffset = d.prog.GetUniformLocation("lens_center_offset")
	d.scaleFactor = d.prog.GetUniformLocation("scale_factor")
	return d, nil
}

func (d *distortPass) Draw(scene glh.Texture, lensRadius, lensCenterOffset float32) {
	if lensRadius < 0.01 {
		lensRadius = 0.01
	}
	d.prog.Use()
	d.vao.Bind()
	d.ebo.Bind()
	d.vbo.Bind()
	gl.EnableVertexAttribArray(0)
	defer gl.DisableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	defer gl.DisableVertexAttribArray(1)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.ActiveTexture(gl.TEXTURE0)
	scene.Bind()
	gl.Uniform1i(d.tex, 0)
	gl.Uniform1f(d.lensRadius, lensRadius)
	gl.Uniform1f(d.centerOffset, lensCenterOffset)
	gl.Uniform1f(d.scaleFactor, DistortionScale(lensRadius))

	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
}
