// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"testing"

	"vrplay/math/quat"
	"vrplay/math/vec"

	"github.com/chewxy/math32"
)

const (
	e = 1.e-6
)

func eq(a, b [16]float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > e {
			return false
		}
	}
	return true
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if !eq(m.m, [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}) {
		t.Errorf("Identity broken: %v", m.m)
	}
}

func TestTranslate(t *testing.T) {
	m := Identity()
	m.Translate(2, 3, 5)
	if !eq(m.m, [16]float32{
		1, 0, 0, 2,
		0, 1, 0, 3,
		0, 0, 1, 5,
		0, 0, 0, 1,
	}) {
		t.Errorf("Identity.Translate(2,3,5) = %v", m.m)
	}
}

func TestScale(t *testing.T) {
	m := Identity()
	m.Scale(2, 3, 5)
	if !eq(m.m, [16]float32{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 5, 0,
		0, 0, 0, 1,
	}) {
		t.Errorf("Identity.Scale(2,3,5) = %v", m.m)
	}
}

func TestMultIdentity(t *testing.T) {
	m := Identity()
	m.Translate(1, 2, 3)
	if got := Mult(Identity(), m); !eq(got.m, m.m) {
		t.Errorf("I*m = %v, want %v", got.m, m.m)
	}
}

func TestFrustumSymmetric(t *testing.T) {
	// A symmetric frustum has no XY shear terms.
	m := Frustum(-1, 1, -1, 1, 1, 10)
	if m.m[2] != 0 || m.m[6] != 0 {
		t.Errorf("symmetric frustum has nonzero center shift: %v", m.m)
	}
	if m.m[14] != -1 {
		t.Errorf("frustum w row broken: %v", m.m)
	}
}

func TestFrustumOffAxis(t *testing.T) {
	// Shifting both planes right by 0.5 yields A = (r+l)/(r-l) = 0.5.
	m := Frustum(-0.5, 1.5, -1, 1, 1, 10)
	if math32.Abs(m.m[2]-0.5) > e {
		t.Errorf("off axis shift = %v, want 0.5", m.m[2])
	}
}

func TestFromQuat(t *testing.T) {
	// 90 degrees around Y carries +Z to +X, same as quat.Rotate.
	q := quat.FromAxisAngle(vec.Vec3{Y: 1}, math32.Pi/2)
	m := FromQuat(q)
	// column vector (0,0,1,1), row major m: x' = m[2]
	if math32.Abs(m.m[2]-1) > e || math32.Abs(m.m[6]) > e || math32.Abs(m.m[10]) > e {
		t.Errorf("FromQuat(rotY 90) = %v", m.m)
	}
}

func TestFromQuatInverse(t *testing.T) {
	q := quat.FromEulerYXZ(0.3, -0.4, 0.2)
	m := Mult(FromQuat(q), FromQuat(q.Inverse()))
	if !eq(m.m, Identity().m) {
		t.Errorf("R(q)*R(q^-1) = %v, want identity", m.m)
	}
}
