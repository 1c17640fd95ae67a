// SPDX-License-Identifier: GPL-2.0-or-later

package media

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExtractor serves a fixed list of samples and records seeks.
type stubExtractor struct {
	mu      sync.Mutex
	info    TrackInfo
	samples []Sample
	cursor  int
	seeks   []int64
	closed  bool
}

func (e *stubExtractor) Info() TrackInfo  { return e.info }
func (e *stubExtractor) InitData() []byte { return nil }

func (e *stubExtractor) ReadSample() (Sample, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cursor >= len(e.samples) {
		return Sample{}, io.EOF
	}
	s := e.samples[e.cursor]
	e.cursor++
	return s, nil
}

func (e *stubExtractor) SeekTo(timeUs int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seeks = append(e.seeks, timeUs)
	for i, s := range e.samples {
		if s.TimeUs <= timeUs {
			e.cursor = i
		}
	}
}

func (e *stubExtractor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

func (e *stubExtractor) seekLog() []int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]int64(nil), e.seeks...)
}

// stubCodec turns every queued access unit into one 2x2 frame. With
// shortPlanes set it claims a larger picture than its buffers hold.
type stubCodec struct {
	mu          sync.Mutex
	queue       []Frame
	flushes     int
	closed      bool
	shortPlanes bool
}

func (c *stubCodec) QueueInput(data []byte, ptsUs int64) error {
	if ptsUs < 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	f := Frame{
		Y:           []byte{byte(ptsUs / 1000), 0, 0, 0},
		UV:          []byte{0x80, 0x80},
		Width:       2,
		Height:      2,
		TimestampUs: ptsUs,
	}
	if c.shortPlanes {
		f.Width, f.Height = 640, 360
	}
	c.queue = append(c.queue, f)
	return nil
}

func (c *stubCodec) DequeueOutput() (Frame, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queue) == 0 {
		return Frame{}, false, nil
	}
	f := c.queue[0]
	c.queue = c.queue[1:]
	return f, true, nil
}

func (c *stubCodec) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue = nil
	c.flushes++
	return nil
}

func (c *stubCodec) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *stubCodec) flushCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushes
}

func stubDecoder(ext *stubExtractor, codec *stubCodec) *Decoder {
	d := NewDecoder(Config{})
	d.newExtractor = func(string) (Extractor, error) { return ext, nil }
	d.newCodec = func(string, TrackInfo) (Codec, error) { return codec, nil }
	return d
}

func clipSamples(n int, stepUs int64) []Sample {
	out := make([]Sample, n)
	for i := range out {
		out[i] = Sample{Data: []byte{0x65}, TimeUs: int64(i) * stepUs, Sync: i == 0}
	}
	return out
}

func TestDecoderDeliversFrames(t *testing.T) {
	ext := &stubExtractor{
		info:    TrackInfo{MIME: mimeH264, Width: 2, Height: 2, DurationUs: 200_000},
		samples: clipSamples(6, 33_333),
	}
	codec := &stubCodec{}
	d := stubDecoder(ext, codec)
	d.Start("clip.mp4")
	defer d.Stop()

	var got Frame
	require.Eventually(t, func() bool {
		f, ok := d.Frame()
		if ok {
			got = f
		}
		return ok
	}, 2*time.Second, time.Millisecond)
	assert.Equal(t, int32(2), got.Width)
	assert.Equal(t, []byte{0x80, 0x80}, got.UV)
}

func TestDecoderDropsShortPlanes(t *testing.T) {
	ext := &stubExtractor{
		info:    TrackInfo{MIME: mimeH264, Width: 640, Height: 360, DurationUs: 200_000},
		samples: clipSamples(6, 33_333),
	}
	codec := &stubCodec{shortPlanes: true}
	d := stubDecoder(ext, codec)
	d.Start("clip.mp4")
	defer d.Stop()

	// Position keeps advancing but torn buffers never reach the slot.
	require.Eventually(t, func() bool {
		return d.PositionUs() > 0
	}, 2*time.Second, time.Millisecond)
	_, ok := d.Frame()
	assert.False(t, ok, "short planes must not be marked dirty")
}

func TestDecoderFrameAtMostOnce(t *testing.T) {
	b := &frameBuffer{}
	b.store([]byte{1}, []byte{2}, 1, 1, 42)
	f, ok := b.take()
	require.True(t, ok)
	assert.Equal(t, int64(42), f.TimestampUs)
	_, ok = b.take()
	assert.False(t, ok, "same frame must not be handed out twice")
}

func TestDecoderPauseFreezesPosition(t *testing.T) {
	ext := &stubExtractor{
		info:    TrackInfo{MIME: mimeH264, Width: 2, Height: 2, DurationUs: 10_000_000},
		samples: clipSamples(300, 33_333),
	}
	codec := &stubCodec{}
	d := stubDecoder(ext, codec)
	d.Start("clip.mp4")
	defer d.Stop()

	require.Eventually(t, func() bool {
		return d.PositionUs() > 0
	}, 2*time.Second, time.Millisecond)

	d.Pause()
	require.True(t, d.Paused())
	// One in-flight frame may still land right after the flip.
	time.Sleep(50 * time.Millisecond)
	pos := d.PositionUs()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, pos, d.PositionUs())
}

func TestDecoderSeekConsumedOnce(t *testing.T) {
	ext := &stubExtractor{
		info:    TrackInfo{MIME: mimeH264, Width: 2, Height: 2, DurationUs: 10_000_000},
		samples: clipSamples(300, 33_333),
	}
	codec := &stubCodec{}
	d := stubDecoder(ext, codec)
	d.Start("clip.mp4")
	defer d.Stop()

	d.SeekTo(5_000_000)
	require.Eventually(t, func() bool {
		return len(ext.seekLog()) == 1
	}, 2*time.Second, time.Millisecond)
	assert.Equal(t, []int64{5_000_000}, ext.seekLog())
	assert.Equal(t, 1, codec.flushCount())

	// No further seeks happen without a new request.
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, ext.seekLog(), 1)
}

func TestSeekLastWriteWins(t *testing.T) {
	s := &playbackState{}
	s.requestSeek(1_000_000)
	s.requestSeek(2_000_000)
	target, ok := s.takeSeek()
	require.True(t, ok)
	assert.Equal(t, int64(2_000_000), target)
	_, ok = s.takeSeek()
	assert.False(t, ok)
}

func TestSeekPositionIsOptimistic(t *testing.T) {
	s := &playbackState{}
	s.setDuration(10_000_000)
	s.setPosition(1_000_000)
	s.requestSeek(7_000_000)
	assert.Equal(t, int64(7_000_000), s.position())
}

func TestSeekClampsToClip(t *testing.T) {
	s := &playbackState{}
	s.setDuration(10_000_000)
	s.requestSeek(-5)
	target, _ := s.takeSeek()
	assert.Equal(t, int64(0), target)
	s.requestSeek(99_000_000)
	target, _ = s.takeSeek()
	assert.Equal(t, int64(10_000_000), target)
}

func TestDecoderLoopsAtEndOfStream(t *testing.T) {
	ext := &stubExtractor{
		info:    TrackInfo{MIME: mimeH264, Width: 2, Height: 2, DurationUs: 100_000},
		samples: clipSamples(3, 33_333),
	}
	codec := &stubCodec{}
	d := stubDecoder(ext, codec)
	d.Start("clip.mp4")
	defer d.Stop()

	require.Eventually(t, func() bool {
		for _, s := range ext.seekLog() {
			if s == 0 {
				return true
			}
		}
		return false
	}, 3*time.Second, time.Millisecond, "end of stream must rewind to the start")
}

func TestDecoderEndToEndScenario(t *testing.T) {
	ext := &stubExtractor{
		info:    TrackInfo{MIME: mimeH264, Width: 640, Height: 360, DurationUs: 10_000_000},
		samples: clipSamples(5, 33_333),
	}
	codec := &stubCodec{}
	d := stubDecoder(ext, codec)
	d.Start("movie.mp4")
	defer d.Stop()

	assert.Equal(t, int64(10_000_000), d.DurationUs())

	// Past end of stream playback wraps instead of stopping.
	require.Eventually(t, func() bool {
		return d.PositionUs() > 0
	}, 2*time.Second, time.Millisecond)
	require.Eventually(t, func() bool {
		for _, s := range ext.seekLog() {
			if s == 0 {
				return true
			}
		}
		return false
	}, 3*time.Second, time.Millisecond)

	// The reported position reflects a seek before the worker acts.
	d.Pause()
	d.SeekTo(5_000_000)
	assert.Equal(t, int64(5_000_000), d.PositionUs())
}

func TestDecoderSessionChangesPerStart(t *testing.T) {
	ext := &stubExtractor{
		info:    TrackInfo{MIME: mimeH264, Width: 2, Height: 2, DurationUs: 100_000},
		samples: clipSamples(3, 33_333),
	}
	d := stubDecoder(ext, &stubCodec{})
	assert.Empty(t, d.Session())
	d.Start("a.mp4")
	first := d.Session()
	assert.NotEmpty(t, first)
	d.Start("b.mp4")
	assert.NotEqual(t, first, d.Session())
	d.Stop()
}

func TestDecoderStopJoinsWorker(t *testing.T) {
	ext := &stubExtractor{
		info:    TrackInfo{MIME: mimeH264, Width: 2, Height: 2, DurationUs: 100_000},
		samples: clipSamples(3, 33_333),
	}
	d := stubDecoder(ext, &stubCodec{})
	d.Start("clip.mp4")
	d.Stop()
	_, ok := d.Frame()
	assert.False(t, ok, "stop clears the frame slot")
	assert.Equal(t, int64(0), d.PositionUs())
}
