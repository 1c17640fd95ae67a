// SPDX-License-Identifier: GPL-2.0-or-later

package sensor

import (
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vrplay/math/quat"
)

// fakeSource replays canned samples, then times out.
type fakeSource struct {
	kind    Kind
	samples []Sample
	closed  bool
}

func (f *fakeSource) Kind() Kind { return f.kind }

func (f *fakeSource) Poll(timeout time.Duration) (Sample, bool) {
	if len(f.samples) == 0 {
		time.Sleep(time.Millisecond)
		return Sample{}, false
	}
	s := f.samples[0]
	f.samples = f.samples[1:]
	return s, true
}

func (f *fakeSource) Close() { f.closed = true }

func open(f *fakeSource) OpenFunc {
	return func() (Source, error) { return f, nil }
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached")
}

// quatNear treats q and -q as the same rotation.
func quatNear(a, b quat.Quat) bool {
	const e = 1e-5
	return math32.Abs(quat.Dot(a, b)) > 1-e
}

func TestRemapExact(t *testing.T) {
	// (x,y,z,w) -> (-y,x,z,w) for a known input.
	r := DefaultRemap()
	q := quat.Quat{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}.Normalize()
	x, y, z, w := r.Apply(q.X, q.Y, q.Z, q.W)
	assert.InDelta(t, float64(-q.Y), float64(x), 1e-6)
	assert.InDelta(t, float64(q.X), float64(y), 1e-6)
	assert.InDelta(t, float64(q.Z), float64(z), 1e-6)
	assert.InDelta(t, float64(q.W), float64(w), 1e-6)
}

func TestRemapIsNotInvolution(t *testing.T) {
	// applying the remap twice yields (-x,-y,z,w): a 90 degree class
	// transform, not its own inverse.
	r := DefaultRemap()
	x, y, z, w := r.Apply(r.Apply(0.1, 0.2, 0.3, 0.9))
	assert.InDelta(t, -0.1, float64(x), 1e-6)
	assert.InDelta(t, -0.2, float64(y), 1e-6)
	assert.InDelta(t, 0.3, float64(z), 1e-6)
	assert.InDelta(t, 0.9, float64(w), 1e-6)
}

func TestParseRemap(t *testing.T) {
	_, err := ParseRemap([]string{"x", "y"})
	require.Error(t, err)
	_, err = ParseRemap([]string{"x", "y", "q", "w"})
	require.Error(t, err)
	r, err := ParseRemap([]string{"w", "-z", "y", "-x"})
	require.NoError(t, err)
	x, y, z, w := r.Apply(1, 2, 3, 4)
	assert.Equal(t, []float32{4, -3, 2, -1}, []float32{x, y, z, w})
}

func TestIdentityBeforeFirstSample(t *testing.T) {
	tr := Start(open(&fakeSource{kind: KindRotationVector}), DefaultRemap())
	defer tr.Stop()
	assert.True(t, quatNear(tr.Orientation(), quat.Identity()))
}

func TestOrientationComposition(t *testing.T) {
	// identity remap isolates the composition rule
	r, err := ParseRemap([]string{"x", "y", "z", "w"})
	require.NoError(t, err)
	raw := quat.FromEulerYXZ(0.5, 0.2, -0.1)
	src := &fakeSource{
		kind:    KindRotationVector,
		samples: []Sample{{Data: [4]float32{raw.X, raw.Y, raw.Z, raw.W}, Timestamp: time.Now()}},
	}
	tr := Start(open(src), r)
	defer tr.Stop()

	waitFor(t, func() bool { return quatNear(tr.Orientation(), raw) })

	// after recenter the exposed orientation is identity
	tr.Recenter()
	assert.True(t, quatNear(tr.Orientation(), quat.Identity()))
}

func TestReferenceSurvivesRestart(t *testing.T) {
	r, _ := ParseRemap([]string{"x", "y", "z", "w"})
	raw := quat.FromEulerYXZ(0.3, 0, 0)
	src := &fakeSource{
		kind:    KindRotationVector,
		samples: []Sample{{Data: [4]float32{raw.X, raw.Y, raw.Z, raw.W}, Timestamp: time.Now()}},
	}
	tr := Start(open(src), r)
	waitFor(t, func() bool { return !quatNear(tr.Orientation(), quat.Identity()) })
	tr.Recenter()
	tr.Stop()

	// a fresh tracker starts from the saved reference, not identity
	tr2 := Start(open(&fakeSource{kind: KindRotationVector}), r)
	defer tr2.Stop()
	want := quat.Mult(raw.Inverse(), quat.Identity())
	assert.True(t, quatNear(tr2.Orientation(), want))

	storeReference(quat.Identity()) // do not leak into other tests
}

func TestGyroSkipsStalledInterval(t *testing.T) {
	r, _ := ParseRemap([]string{"x", "y", "z", "w"})
	t0 := time.Now()
	src := &fakeSource{
		kind: KindGyroscope,
		samples: []Sample{
			// first sample only establishes the timestamp
			{Data: [4]float32{0, 1, 0, 0}, Timestamp: t0},
			// 300ms gap: must be skipped, orientation stays identity
			{Data: [4]float32{0, 1, 0, 0}, Timestamp: t0.Add(300 * time.Millisecond)},
			// 10ms at 1 rad/s around yaw: integrates 0.01 rad
			{Data: [4]float32{0, 1, 0, 0}, Timestamp: t0.Add(310 * time.Millisecond)},
		},
	}
	tr := Start(open(src), r)
	defer tr.Stop()

	want := quat.FromEulerYXZ(0.01, 0, 0)
	waitFor(t, func() bool { return quatNear(tr.Orientation(), want) })
}

func TestUnavailableSensor(t *testing.T) {
	tr := Start(func() (Source, error) {
		return nil, assert.AnError
	}, DefaultRemap())
	assert.False(t, tr.Available())
	// reads still work and never block
	assert.True(t, quatNear(tr.Orientation(), quat.Identity()))
	tr.Stop()
}

func TestStopJoinsAndCloses(t *testing.T) {
	src := &fakeSource{kind: KindGyroscope}
	tr := Start(open(src), DefaultRemap())
	tr.Stop()
	assert.True(t, src.closed)
	// reads after teardown return the last known value
	assert.True(t, quatNear(tr.Orientation(), quat.Identity()))
}
