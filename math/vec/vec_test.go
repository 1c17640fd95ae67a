// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import "testing"

func TestLength(t *testing.T) {
	v := Vec3{3, 4, 0}
	if l := v.Length(); l != 5 {
		t.Errorf("Length(3,4,0) = %v", l)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec3{0, 0, 2}
	n := v.Normalize()
	if n != (Vec3{0, 0, 1}) {
		t.Errorf("Normalize(0,0,2) = %v", n)
	}
	z := Vec3{}
	if n := z.Normalize(); n != (Vec3{}) {
		t.Errorf("Normalize(0) = %v", n)
	}
}

func TestCross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if c := Cross(x, y); c != (Vec3{0, 0, 1}) {
		t.Errorf("Cross(x,y) = %v", c)
	}
}

func TestDot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if d := Dot(a, b); d != 32 {
		t.Errorf("Dot = %v", d)
	}
}
