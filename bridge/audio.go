// SPDX-License-Identifier: GPL-2.0-or-later

// Package bridge issues fire-and-forget audio commands to the host
// sound device. Callers never consume results; failures are logged
// and playback continues silently.
package bridge

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const volumeStep = 0.25

// Player owns the speaker session for one audio source at a time.
type Player struct {
	mu       sync.Mutex
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
}

func NewPlayer() *Player {
	return &Player{}
}

// Start plays the given audio file, replacing whatever was playing.
// Sources without a decodable audio form are ignored.
func (p *Player) Start(path string) {
	p.Stop()

	f, err := os.Open(path)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return
	}
	if err != nil {
		log.Printf("audio: decode %s: %v", path, err)
		f.Close()
		return
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(50*time.Millisecond)); err != nil {
		log.Printf("audio: speaker: %v", err)
		streamer.Close()
		return
	}

	p.mu.Lock()
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: beep.Loop(-1, streamer)}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}
	speaker.Play(p.volume)
	p.mu.Unlock()
}

func (p *Player) Pause()  { p.setPaused(true) }
func (p *Player) Resume() { p.setPaused(false) }

func (p *Player) setPaused(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = v
	speaker.Unlock()
}

// SeekMs moves the audio position. Positions past the end are clipped.
func (p *Player) SeekMs(ms int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return
	}
	pos := p.format.SampleRate.N(time.Duration(ms) * time.Millisecond)
	if pos >= p.streamer.Len() {
		pos = p.streamer.Len() - 1
	}
	if pos < 0 {
		pos = 0
	}
	speaker.Lock()
	if err := p.streamer.Seek(pos); err != nil {
		log.Printf("audio: seek: %v", err)
	}
	speaker.Unlock()
}

func (p *Player) VolumeUp()   { p.adjustVolume(volumeStep) }
func (p *Player) VolumeDown() { p.adjustVolume(-volumeStep) }

func (p *Player) adjustVolume(delta float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Volume += delta
	p.volume.Silent = p.volume.Volume < -4
	speaker.Unlock()
}

// Stop ends playback and releases the source.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return
	}
	speaker.Clear()
	p.streamer.Close()
	p.streamer = nil
	p.ctrl = nil
	p.volume = nil
}
