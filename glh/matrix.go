// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"vrplay/math/quat"
)

// Matrix is a 4x4 transform. Values are kept in row major order and
// transposed on upload, as opengl expects column major order. All
// projections are right handed.
type Matrix struct {
	m [16]float32
}

func Identity() *Matrix {
	return &Matrix{
		m: [16]float32{
			1, 0, 0, 0, // 0 - 3
			0, 1, 0, 0, // 4 - 7
			0, 0, 1, 0, // 8 - 11
			0, 0, 0, 1, // 12 - 15
		},
	}
}

func (m *Matrix) Copy() *Matrix {
	nm := &Matrix{}
	copy(nm.m[:], m.m[:])
	return nm
}

func (m *Matrix) SetAsUniform(id int32) {
	// we use row major order, so transpose must be set to true
	// as opengl uses column major order
	gl.UniformMatrix4fv(id, 1, true, &m.m[0])
}

func (m *Matrix) Translate(x, y, z float32) {
	// 1, 0, 0, x
	// 0, 1, 0, y
	// 0, 0, 1, z
	// 0, 0, 0, 1
	// compute m*t
	n := [16]float32{
		m.m[0], m.m[1], m.m[2], x*m.m[0] + y*m.m[1] + z*m.m[2] + m.m[3],
		m.m[4], m.m[5], m.m[6], x*m.m[4] + y*m.m[5] + z*m.m[6] + m.m[7],
		m.m[8], m.m[9], m.m[10], x*m.m[8] + y*m.m[9] + z*m.m[10] + m.m[11],
		m.m[12], m.m[13], m.m[14], x*m.m[12] + y*m.m[13] + z*m.m[14] + m.m[15],
	}
	m.m = n
}

func (m *Matrix) Scale(x, y, z float32) {
	// x, 0, 0, 0
	// 0, y, 0, 0
	// 0, 0, z, 0
	// 0, 0, 0, 1
	// compute m*t
	n := [16]float32{
		x * m.m[0], y * m.m[1], z * m.m[2], m.m[3],
		x * m.m[4], y * m.m[5], z * m.m[6], m.m[7],
		x * m.m[8], y * m.m[9], z * m.m[10], m.m[11],
		x * m.m[12], y * m.m[13], z * m.m[14], m.m[15],
	}
	m.m = n
}

// Mult returns a*b.
func Mult(a, b *Matrix) *Matrix {
	r := &Matrix{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a.m[i*4+k] * b.m[k*4+j]
			}
			r.m[i*4+j] = s
		}
	}
	return r
}

// Frustum builds an off axis perspective projection with the given
// clip planes at the near distance. Asymmetric left/right values
// implement the per eye lens offset.
func Frustum(left, right, bottom, top, near, far float32) *Matrix {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return &Matrix{
		m: [16]float32{
			2 * near / rl, 0, (right + left) / rl, 0,
			0, 2 * near / tb, (top + bottom) / tb, 0,
			0, 0, -(far + near) / fn, -2 * far * near / fn,
			0, 0, -1, 0,
		},
	}
}

// FromQuat returns the rotation matrix of the unit quaternion q.
func FromQuat(q quat.Quat) *Matrix {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	return &Matrix{
		m: [16]float32{
			1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w), 0,
			2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w), 0,
			2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y), 0,
			0, 0, 0, 1,
		},
	}
}
