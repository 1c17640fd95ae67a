// SPDX-License-Identifier: GPL-2.0-or-later

package media

import "sync"

// playbackState is shared between the decode worker and the callers of
// the playback controls. A requested seek is kept pending until the
// worker consumes it; repeated requests before consumption overwrite
// each other so only the newest target is honored.
type playbackState struct {
	mu          sync.Mutex
	playing     bool
	positionUs  int64
	durationUs  int64
	pendingSeek int64
	hasSeek     bool
}

func (s *playbackState) setPlaying(v bool) {
	s.mu.Lock()
	s.playing = v
	s.mu.Unlock()
}

func (s *playbackState) isPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

func (s *playbackState) setPosition(us int64) {
	s.mu.Lock()
	s.positionUs = us
	s.mu.Unlock()
}

func (s *playbackState) position() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.positionUs
}

func (s *playbackState) setDuration(us int64) {
	s.mu.Lock()
	s.durationUs = us
	s.mu.Unlock()
}

func (s *playbackState) duration() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.durationUs
}

// requestSeek records the target and optimistically moves the reported
// position so UI readers see the jump before the worker catches up.
func (s *playbackState) requestSeek(us int64) {
	s.mu.Lock()
	if us < 0 {
		us = 0
	}
	if s.durationUs > 0 && us > s.durationUs {
		us = s.durationUs
	}
	s.pendingSeek = us
	s.hasSeek = true
	s.positionUs = us
	s.mu.Unlock()
}

// takeSeek consumes the pending request, if any. The worker calls this
// once per loop iteration so each request is acted on exactly once.
func (s *playbackState) takeSeek() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasSeek {
		return 0, false
	}
	s.hasSeek = false
	return s.pendingSeek, true
}

func (s *playbackState) reset() {
	s.mu.Lock()
	s.playing = false
	s.positionUs = 0
	s.durationUs = 0
	s.hasSeek = false
	s.mu.Unlock()
}
