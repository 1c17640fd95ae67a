// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistortionScaleMonotonic(t *testing.T) {
	prev := DistortionScale(0)
	assert.Equal(t, float32(1), prev)
	for r := float32(0.1); r <= 1.0; r += 0.1 {
		s := DistortionScale(r)
		assert.LessOrEqual(t, s, prev, "radius %v", r)
		prev = s
	}
}

func TestDistortionScaleClampsRadius(t *testing.T) {
	assert.Greater(t, DistortionScale(0.5), DistortionScale(1.0))
	assert.Equal(t, DistortionScale(1.0), DistortionScale(1.5))
	assert.Equal(t, DistortionScale(1.0), DistortionScale(100))
}

func TestDistortionScaleValue(t *testing.T) {
	// 1 / (1 + 0.25 + 0.15) at full radius.
	assert.InDelta(t, 1.0/1.4, DistortionScale(1.0), 1e-6)
}
