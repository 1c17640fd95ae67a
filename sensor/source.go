// SPDX-License-Identifier: GPL-2.0-or-later

package sensor

import (
	"fmt"
	"strings"
	"time"
)

// Kind tells how Sample.Data is to be interpreted.
type Kind int

const (
	// KindRotationVector delivers an absolute orientation quaternion
	// (x,y,z,w) relative to an external reference frame.
	KindRotationVector Kind = iota
	// KindGameRotationVector is like KindRotationVector but without
	// magnetometer anchoring; it may drift in yaw.
	KindGameRotationVector
	// KindGyroscope delivers angular velocity in rad/s around the
	// device x,y,z axes. Orientation must be integrated.
	KindGyroscope
)

type Sample struct {
	Data      [4]float32
	Timestamp time.Time
}

// Source is one opened rotation sensor. Poll blocks for at most
// timeout and reports whether a new sample arrived.
type Source interface {
	Kind() Kind
	Poll(timeout time.Duration) (Sample, bool)
	Close()
}

// OpenFunc acquires the preferred available source. The tracker tries
// an absolute rotation vector first, then the game rotation vector,
// then the raw gyroscope; OpenFunc hides that platform specific
// search.
type OpenFunc func() (Source, error)

// Remap maps raw sensor quaternion components onto the logical
// pitch/yaw/roll axes of the display. The default, (-y, x, z, w), is
// an empirical calibration constant for one sensor-to-screen mounting
// orientation; it is configurable because it is not a universal
// transform. Note it is a 90 degree class rotation, not an involution:
// applied twice it yields (-x,-y,z,w).
type Remap struct {
	idx  [4]int
	sign [4]float32
}

// DefaultRemap is the mounting correction observed to fix pitch/yaw
// cross-talk on the reference hardware.
func DefaultRemap() Remap {
	r, _ := ParseRemap([]string{"-y", "x", "z", "w"})
	return r
}

// ParseRemap parses component tokens like "-y" or "w". Exactly four
// tokens are required, one per output component x,y,z,w.
func ParseRemap(tokens []string) (Remap, error) {
	var r Remap
	if len(tokens) != 4 {
		return r, fmt.Errorf("remap needs 4 components, got %d", len(tokens))
	}
	for i, tok := range tokens {
		sign := float32(1)
		t := strings.TrimSpace(tok)
		if strings.HasPrefix(t, "-") {
			sign = -1
			t = t[1:]
		}
		var j int
		switch t {
		case "x":
			j = 0
		case "y":
			j = 1
		case "z":
			j = 2
		case "w":
			j = 3
		default:
			return r, fmt.Errorf("bad remap component %q", tok)
		}
		r.idx[i] = j
		r.sign[i] = sign
	}
	return r, nil
}

// Apply remaps the four raw components onto logical x,y,z,w.
func (r Remap) Apply(x, y, z, w float32) (float32, float32, float32, float32) {
	in := [4]float32{x, y, z, w}
	return r.sign[0] * in[r.idx[0]],
		r.sign[1] * in[r.idx[1]],
		r.sign[2] * in[r.idx[2]],
		r.sign[3] * in[r.idx[3]]
}
