// SPDX-License-Identifier: GPL-2.0-or-later

package media

import (
	"io"
	"log"
	"os/exec"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// ffmpegCodec decodes an elementary video stream through an ffmpeg
// child process: Annex-B access units go in on stdin, raw NV12 frames
// come back on stdout. ffmpeg emits frames in presentation order, so
// output timestamps are assigned from the smallest queued input
// timestamp.
type ffmpegCodec struct {
	binary string
	format string
	width  int32
	height int32

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	frames chan Frame

	mu  sync.Mutex
	pts []int64
}

func formatForMIME(mime string) (string, error) {
	switch mime {
	case mimeH264:
		return "h264", nil
	case mimeHEVC:
		return "hevc", nil
	}
	return "", errors.Errorf("no decoder for %q", mime)
}

func newFFmpegCodec(binary string, info TrackInfo) (Codec, error) {
	format, err := formatForMIME(info.MIME)
	if err != nil {
		return nil, err
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil, errors.New("decoder needs track dimensions")
	}
	c := &ffmpegCodec{
		binary: binary,
		format: format,
		width:  info.Width,
		height: info.Height,
	}
	if err := c.start(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ffmpegCodec) start() error {
	cmd := exec.Command(c.binary,
		"-hide_banner",
		"-loglevel", "error",
		"-f", c.format,
		"-i", "pipe:0",
		"-f", "rawvideo",
		"-pix_fmt", "nv12",
		"pipe:1",
	)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return errors.Wrap(err, "decoder stdin")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "decoder stdout")
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "start decoder")
	}
	c.cmd = cmd
	c.stdin = stdin
	c.frames = make(chan Frame, 4)
	go c.readFrames(stdout, c.frames)
	return nil
}

// readFrames pulls fixed-size NV12 frames off the decoder's stdout
// until it closes. A short final read is dropped rather than delivered
// as a torn frame.
func (c *ffmpegCodec) readFrames(r io.Reader, out chan<- Frame) {
	defer close(out)
	ySize := int(c.width) * int(c.height)
	uvSize := ySize / 2
	buf := make([]byte, ySize+uvSize)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			if err != io.EOF && err != io.ErrUnexpectedEOF {
				log.Printf("video decoder read: %v", err)
			}
			return
		}
		f := Frame{
			Y:           append([]byte(nil), buf[:ySize]...),
			UV:          append([]byte(nil), buf[ySize:]...),
			Width:       c.width,
			Height:      c.height,
			TimestampUs: c.popPts(),
		}
		out <- f
	}
}

func (c *ffmpegCodec) popPts() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.pts) == 0 {
		return 0
	}
	v := c.pts[0]
	c.pts = c.pts[1:]
	return v
}

func (c *ffmpegCodec) QueueInput(data []byte, ptsUs int64) error {
	if ptsUs >= 0 {
		c.mu.Lock()
		i := sort.Search(len(c.pts), func(i int) bool { return c.pts[i] > ptsUs })
		c.pts = append(c.pts, 0)
		copy(c.pts[i+1:], c.pts[i:])
		c.pts[i] = ptsUs
		c.mu.Unlock()
	}
	if _, err := c.stdin.Write(data); err != nil {
		return errors.Wrap(err, "feed decoder")
	}
	return nil
}

func (c *ffmpegCodec) DequeueOutput() (Frame, bool, error) {
	select {
	case f, ok := <-c.frames:
		if !ok {
			return Frame{}, false, errors.New("decoder exited")
		}
		return f, true, nil
	default:
		return Frame{}, false, nil
	}
}

// Flush restarts the child process. A pipe decoder has no discard
// control, so a fresh process is the only way to drop buffered frames.
func (c *ffmpegCodec) Flush() error {
	c.stop()
	c.mu.Lock()
	c.pts = nil
	c.mu.Unlock()
	return c.start()
}

func (c *ffmpegCodec) stop() {
	if c.cmd == nil {
		return
	}
	c.stdin.Close()
	for range c.frames {
	}
	c.cmd.Wait()
	c.cmd = nil
}

func (c *ffmpegCodec) Close() error {
	c.stop()
	return nil
}
