// SPDX-License-Identifier: GPL-2.0-or-later

package media

// TrackInfo describes the selected video track of a container.
type TrackInfo struct {
	MIME       string
	Width      int32
	Height     int32
	DurationUs int64
}

// Sample is one compressed access unit in decode order.
type Sample struct {
	Data   []byte
	TimeUs int64
	Sync   bool
}

// Extractor walks the compressed samples of a container's video track.
// ReadSample returns io.EOF after the last sample until the cursor is
// moved again with SeekTo.
type Extractor interface {
	Info() TrackInfo
	// InitData returns codec initialization in Annex-B form, parameter
	// set NAL units with start codes, or nil when the stream carries
	// them in band.
	InitData() []byte
	ReadSample() (Sample, error)
	// SeekTo moves the cursor to the closest sync sample at or before
	// the given presentation time.
	SeekTo(timeUs int64)
	Close() error
}
