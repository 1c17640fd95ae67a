// SPDX-License-Identifier: GPL-2.0-or-later

package media

import (
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Config carries the pipeline's external tool settings.
type Config struct {
	// FFmpeg is the decoder binary to exec. Empty means "ffmpeg" from
	// PATH.
	FFmpeg string
}

// Decoder runs a background worker that demuxes and decodes one video
// source into a single-slot frame buffer. All controls are safe to
// call from other goroutines; they never block on decode progress.
type Decoder struct {
	cfg     Config
	buffer  *frameBuffer
	state   *playbackState
	running atomic.Bool
	wg      sync.WaitGroup
	session atomic.Value // string

	newExtractor func(path string) (Extractor, error)
	newCodec     func(binary string, info TrackInfo) (Codec, error)
}

func NewDecoder(cfg Config) *Decoder {
	if cfg.FFmpeg == "" {
		cfg.FFmpeg = "ffmpeg"
	}
	d := &Decoder{
		cfg:          cfg,
		buffer:       &frameBuffer{},
		state:        &playbackState{},
		newExtractor: newMP4Extractor,
		newCodec:     newFFmpegCodec,
	}
	d.session.Store("")
	return d
}

// Start begins playback of the given file. A running session is torn
// down first. Start never fails: when the source cannot be demuxed or
// decoded the worker falls back to a synthetic test pattern so the
// display keeps updating.
func (d *Decoder) Start(path string) {
	d.Stop()
	d.session.Store(uuid.NewString())
	d.state.setPlaying(true)
	d.running.Store(true)
	d.wg.Add(1)
	go d.run(path)
}

// Session identifies the current playback session. It changes on each
// Start so consumers can detect source swaps.
func (d *Decoder) Session() string {
	return d.session.Load().(string)
}

// Stop halts the worker and joins it, then clears the frame slot.
func (d *Decoder) Stop() {
	d.running.Store(false)
	d.wg.Wait()
	d.buffer.clear()
	d.state.reset()
}

func (d *Decoder) isRunning() bool { return d.running.Load() }

// Frame hands out the most recent decoded frame at most once. The
// second call without a new frame in between reports false.
func (d *Decoder) Frame() (Frame, bool) { return d.buffer.take() }

func (d *Decoder) Pause()  { d.state.setPlaying(false) }
func (d *Decoder) Resume() { d.state.setPlaying(true) }

func (d *Decoder) TogglePause() {
	if d.state.isPlaying() {
		d.Pause()
	} else {
		d.Resume()
	}
}

func (d *Decoder) Paused() bool { return !d.state.isPlaying() }

// Seek requests a jump to the given position. Requests replace each
// other until the worker picks the newest one up.
func (d *Decoder) SeekTo(us int64) { d.state.requestSeek(us) }

// SeekBy requests a jump relative to the current position.
func (d *Decoder) SeekBy(deltaUs int64) {
	d.state.requestSeek(d.state.position() + deltaUs)
}

func (d *Decoder) PositionUs() int64 { return d.state.position() }
func (d *Decoder) DurationUs() int64 { return d.state.duration() }

func (d *Decoder) run(path string) {
	defer d.wg.Done()

	ext, err := d.newExtractor(path)
	if err != nil {
		log.Printf("media: %s: %v, showing test pattern", path, err)
		d.runTestPattern()
		return
	}
	defer ext.Close()
	info := ext.Info()
	d.state.setDuration(info.DurationUs)

	codec, err := d.newCodec(d.cfg.FFmpeg, info)
	if err != nil {
		log.Printf("media: decoder for %s: %v, showing test pattern", info.MIME, err)
		d.runTestPattern()
		return
	}
	defer codec.Close()
	if init := ext.InitData(); len(init) > 0 {
		if err := codec.QueueInput(init, -1); err != nil {
			log.Printf("media: decoder init: %v, showing test pattern", err)
			d.runTestPattern()
			return
		}
	}

	pace := newPacer()
	for d.isRunning() {
		if target, ok := d.state.takeSeek(); ok {
			ext.SeekTo(target)
			if err := codec.Flush(); err != nil {
				log.Printf("media: decoder flush: %v, showing test pattern", err)
				d.runTestPattern()
				return
			}
			if init := ext.InitData(); len(init) > 0 {
				codec.QueueInput(init, -1)
			}
			pace.resync()
			continue
		}

		if !d.state.isPlaying() {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		frame, ok, err := codec.DequeueOutput()
		if err != nil {
			log.Printf("media: decoder: %v, showing test pattern", err)
			d.runTestPattern()
			return
		}
		if ok {
			// Short planes would tear on screen. Drop the buffer but
			// keep position and pacing moving.
			if wholePlanes(&frame) {
				d.buffer.store(frame.Y, frame.UV, frame.Width, frame.Height, frame.TimestampUs)
			}
			d.state.setPosition(frame.TimestampUs)
			pace.frameDone(frame.TimestampUs)
			continue
		}

		sample, err := ext.ReadSample()
		if err == io.EOF {
			// Loop playback: rewind to the first sync sample.
			ext.SeekTo(0)
			pace.resync()
			continue
		}
		if err != nil {
			log.Printf("media: read sample: %v, showing test pattern", err)
			d.runTestPattern()
			return
		}
		if err := codec.QueueInput(sample.Data, sample.TimeUs); err != nil {
			log.Printf("media: feed decoder: %v, showing test pattern", err)
			d.runTestPattern()
			return
		}
	}
}
