// SPDX-License-Identifier: GPL-2.0-or-later

// package quat implements unit quaternions for orientation tracking.
package quat

import (
	"github.com/chewxy/math32"

	"vrplay/math/vec"
)

type Quat struct {
	X, Y, Z, W float32
}

func Identity() Quat {
	return Quat{0, 0, 0, 1}
}

// Mult returns the Hamilton product a*b, the rotation b followed by a.
func Mult(a, b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

func (q *Quat) Length() float32 {
	return math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns the unit quaternion with the same direction.
// The zero quaternion normalizes to identity.
func (q Quat) Normalize() Quat {
	l := q.Length()
	if l == 0 {
		return Identity()
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Inverse returns the inverse rotation. q must be a unit quaternion.
func (q Quat) Inverse() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// FromAxisAngle returns the rotation of angle radians around axis.
func FromAxisAngle(axis vec.Vec3, angle float32) Quat {
	s, c := math32.Sincos(angle / 2)
	a := axis.Normalize()
	return Quat{a.X * s, a.Y * s, a.Z * s, c}
}

// FromEulerYXZ composes yaw around Y, then pitch around X, then roll
// around Z. Both tracking paths use this one convention.
func FromEulerYXZ(yaw, pitch, roll float32) Quat {
	qy := FromAxisAngle(vec.Vec3{Y: 1}, yaw)
	qx := FromAxisAngle(vec.Vec3{X: 1}, pitch)
	qz := FromAxisAngle(vec.Vec3{Z: 1}, roll)
	return Mult(Mult(qy, qx), qz)
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v vec.Vec3) vec.Vec3 {
	u := vec.Vec3{X: q.X, Y: q.Y, Z: q.Z}
	uv := vec.Cross(u, v)
	uuv := vec.Cross(u, uv)
	return vec.Add(v, vec.Add(uv.Scale(2*q.W), uuv.Scale(2)))
}

// Dot returns the four dimensional dot product.
func Dot(a, b Quat) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}
