// SPDX-License-Identifier: GPL-2.0-or-later

package media

import (
	"math"
	"time"
)

const (
	pacerWarmupFrames   = 15
	pacerDefaultMs      = 33
	pacerResyncBehindMs = 100
)

// pacer spaces frame delivery at the stream's native rate. It measures
// presentation timestamp deltas over the first frames while sleeping a
// conservative default, locks the averaged interval, and from then on
// advances a fixed deadline. When delivery falls far behind the
// deadline snaps to now instead of letting frames burst out.
type pacer struct {
	frames     int
	prevPtsUs  int64
	deltaSumMs int64
	deltaCount int64

	intervalMs int64
	locked     bool
	deadline   time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func newPacer() *pacer {
	return &pacer{
		intervalMs: pacerDefaultMs,
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

// frameDone is called by the decode worker after each delivered frame
// with that frame's presentation timestamp.
func (p *pacer) frameDone(ptsUs int64) {
	if !p.locked {
		if p.frames > 0 {
			d := (ptsUs - p.prevPtsUs) / 1000
			if d > 0 {
				p.deltaSumMs += d
				p.deltaCount++
			}
		}
		p.prevPtsUs = ptsUs
		p.frames++
		p.sleep(time.Duration(p.intervalMs) * time.Millisecond)
		if p.frames >= pacerWarmupFrames {
			if p.deltaCount > 0 {
				avg := float64(p.deltaSumMs) / float64(p.deltaCount)
				p.intervalMs = int64(math.Round(avg))
				if p.intervalMs < 1 {
					p.intervalMs = 1
				}
			}
			p.locked = true
			p.deadline = p.now()
		}
		return
	}
	p.deadline = p.deadline.Add(time.Duration(p.intervalMs) * time.Millisecond)
	n := p.now()
	if p.deadline.After(n) {
		p.sleep(p.deadline.Sub(n))
	} else if n.Sub(p.deadline) > pacerResyncBehindMs*time.Millisecond {
		p.deadline = n
	}
}

// resync drops the accumulated deadline after a discontinuity such as
// a seek. The locked interval is kept.
func (p *pacer) resync() {
	if p.locked {
		p.deadline = p.now()
	} else {
		p.frames = 0
		p.deltaSumMs = 0
		p.deltaCount = 0
	}
}
