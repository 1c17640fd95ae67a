// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"vrplay/glh"
	"vrplay/math/quat"
)

const (
	nearPlane = 0.1
	farPlane  = 100.0
	// Vertical half extent of the frustum at the near plane. Equals a
	// vertical field of view of roughly 80 degrees.
	frustumHalf = 0.0839
)

// eyeProjection builds the off axis projection for one eye. eyeSign is
// -1 for the left eye and +1 for the right. The horizontal clip planes
// are shifted by the lens center offset, away from the nose, so the
// optical axis of the viewer's lens and the projection center line up.
func eyeProjection(aspect, lensCenterOffset, eyeSign float32) *glh.Matrix {
	shift := -eyeSign * lensCenterOffset * frustumHalf
	return glh.Frustum(
		-frustumHalf*aspect+shift,
		frustumHalf*aspect+shift,
		-frustumHalf, frustumHalf,
		nearPlane, farPlane)
}

func monoProjection(aspect float32) *glh.Matrix {
	return glh.Frustum(
		-frustumHalf*aspect, frustumHalf*aspect,
		-frustumHalf, frustumHalf,
		nearPlane, farPlane)
}

// eyeView is the inverse of the head transform for one eye: the world
// is rotated opposite to the head and shifted by half the
// interpupillary distance.
func eyeView(orientation quat.Quat, eyeSign, ipd float32) *glh.Matrix {
	t := glh.Identity()
	t.Translate(-eyeSign*ipd/2, 0, 0)
	return glh.Mult(t, glh.FromQuat(orientation.Inverse()))
}
