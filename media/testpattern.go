// SPDX-License-Identifier: GPL-2.0-or-later

package media

import "time"

const (
	testPatternWidth      = 1280
	testPatternHeight     = 720
	testPatternDurationUs = 60 * 1_000_000
	testPatternIntervalUs = 16_667
)

// runTestPattern feeds the frame buffer with a synthetic animated
// gradient when no decodable source is available. It obeys the same
// playback controls as real decode: pause freezes the position, seeks
// are consumed, playback loops at the pattern duration.
func (d *Decoder) runTestPattern() {
	d.state.setDuration(testPatternDurationUs)

	ySize := testPatternWidth * testPatternHeight
	y := make([]byte, ySize)
	uv := make([]byte, ySize/2)

	positionUs := d.state.position()
	for d.isRunning() {
		if target, ok := d.state.takeSeek(); ok {
			positionUs = target % testPatternDurationUs
		}
		if !d.state.isPlaying() {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		drawTestPattern(y, uv, positionUs)
		d.buffer.store(y, uv, testPatternWidth, testPatternHeight, positionUs)
		d.state.setPosition(positionUs)

		positionUs = (positionUs + testPatternIntervalUs) % testPatternDurationUs
		time.Sleep(testPatternIntervalUs * time.Microsecond)
	}
}

// drawTestPattern writes a diagonal luma gradient that scrolls with
// the playback position, over vertical chroma bands.
func drawTestPattern(y, uv []byte, positionUs int64) {
	shift := int(positionUs / 10_000)
	for row := 0; row < testPatternHeight; row++ {
		base := row * testPatternWidth
		for col := 0; col < testPatternWidth; col++ {
			y[base+col] = byte(row + col + shift)
		}
	}
	for row := 0; row < testPatternHeight/2; row++ {
		base := row * testPatternWidth
		for col := 0; col < testPatternWidth/2; col++ {
			band := byte(col / 80 * 32)
			uv[base+2*col] = 128 + band/2
			uv[base+2*col+1] = 128 - band/2
		}
	}
}
