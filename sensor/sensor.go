// SPDX-License-Identifier: GPL-2.0-or-later

// package sensor tracks head orientation on a dedicated worker so
// sensor jitter never stalls the render loop.
package sensor

import (
	"log"
	"sync"
	"time"

	"vrplay/math/quat"
)

const (
	// pollTimeout bounds teardown latency: the stop flag is checked
	// once per poll.
	pollTimeout = 100 * time.Millisecond
	// maxGyroGap skips integration after a stall so a huge dt does not
	// inject a bogus rotation.
	maxGyroGap = 200 * time.Millisecond
)

type state struct {
	raw       quat.Quat // written only by the worker
	reference quat.Quat // written only by Recenter
	running   bool
}

// Tracker produces a continuously updated head orientation
// quaternion. The exposed orientation is inverse(reference)*raw.
type Tracker struct {
	mu        sync.Mutex
	st        state
	remap     Remap
	available bool
	wg        sync.WaitGroup
}

// Start acquires a sensor through open and begins tracking. A failed
// acquisition is not an error: the tracker stays at identity and
// reports unavailable.
func Start(open OpenFunc, remap Remap) *Tracker {
	t := &Tracker{
		remap: remap,
		st: state{
			raw:       quat.Identity(),
			reference: loadReference(),
			running:   true,
		},
	}

	src, err := open()
	if err != nil {
		log.Printf("sensor: no rotation sensor: %v", err)
		t.st.running = false
		return t
	}
	t.available = true

	t.wg.Add(1)
	go t.loop(src)
	return t
}

func (t *Tracker) loop(src Source) {
	defer t.wg.Done()
	defer src.Close()
	// a panicking worker must not take the render thread with it;
	// readers keep the last good orientation
	defer func() {
		if r := recover(); r != nil {
			log.Printf("sensor: worker panic: %v", r)
			t.mu.Lock()
			t.st.running = false
			t.mu.Unlock()
		}
	}()

	var pitch, yaw, roll float32
	var lastGyro time.Time

	for t.runningNow() {
		s, ok := src.Poll(pollTimeout)
		if !ok {
			continue
		}

		var q quat.Quat
		updated := false
		switch src.Kind() {
		case KindRotationVector, KindGameRotationVector:
			x, y, z, w := t.remap.Apply(s.Data[0], s.Data[1], s.Data[2], s.Data[3])
			q = quat.Quat{X: x, Y: y, Z: z, W: w}.Normalize()
			updated = true
		case KindGyroscope:
			if !lastGyro.IsZero() {
				dt := s.Timestamp.Sub(lastGyro)
				if dt > 0 && dt < maxGyroGap {
					// same remap convention as the absolute path,
					// applied to the angular rates
					px, py, pz, _ := t.remap.Apply(s.Data[0], s.Data[1], s.Data[2], 0)
					d := float32(dt.Seconds())
					pitch += px * d
					yaw += py * d
					roll += pz * d
					q = quat.FromEulerYXZ(yaw, pitch, roll)
					updated = true
				}
			}
			lastGyro = s.Timestamp
		}

		if updated {
			t.mu.Lock()
			t.st.raw = q
			t.mu.Unlock()
		}
	}
}

func (t *Tracker) runningNow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st.running
}

// Orientation never blocks on sensor data. It returns identity before
// the first sample and the last known orientation after the worker
// has exited.
func (t *Tracker) Orientation() quat.Quat {
	t.mu.Lock()
	defer t.mu.Unlock()
	return quat.Mult(t.st.reference.Inverse(), t.st.raw)
}

// Recenter makes the current physical orientation the logical
// forward. The reference is saved process wide so a tracker restart
// does not require a new tare.
func (t *Tracker) Recenter() {
	t.mu.Lock()
	t.st.reference = t.st.raw
	ref := t.st.reference
	t.mu.Unlock()
	storeReference(ref)
	log.Printf("sensor: recentered")
}

func (t *Tracker) Available() bool {
	return t.available
}

// Stop signals the worker and joins it. The worker disables and
// closes the sensor on the way out, so no native handle outlives it.
func (t *Tracker) Stop() {
	t.mu.Lock()
	t.st.running = false
	t.mu.Unlock()
	t.wg.Wait()
}
