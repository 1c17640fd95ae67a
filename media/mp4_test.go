// SPDX-License-Identifier: GPL-2.0-or-later

package media

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableExtractor builds an mp4Extractor over hand-built sample tables
// and a flat file of AVCC samples, bypassing box parsing. Four samples
// of 8 bytes each, two chunks, 90kHz timescale, 3000 ticks per sample,
// samples 1 and 3 sync.
func tableExtractor(t *testing.T) *mp4Extractor {
	t.Helper()

	sample := func(payload byte) []byte {
		return []byte{0, 0, 0, 4, payload, 0x11, 0x22, 0x33}
	}
	data := make([]byte, 16)
	data = append(data, sample(1)...)
	data = append(data, sample(2)...)
	data = append(data, make([]byte, 100-len(data))...)
	data = append(data, sample(3)...)
	data = append(data, sample(4)...)

	path := filepath.Join(t.TempDir(), "clip.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	stsc := &mp4.StscBox{}
	require.NoError(t, stsc.AddEntry(1, 2, 1))
	require.NoError(t, stsc.AddEntry(2, 2, 1))

	return &mp4Extractor{
		f: f,
		stbl: &mp4.StblBox{
			Stts: &mp4.SttsBox{
				SampleCount:     []uint32{4},
				SampleTimeDelta: []uint32{3000},
			},
			Stsz: &mp4.StszBox{
				SampleNumber: 4,
				SampleSize:   []uint32{8, 8, 8, 8},
			},
			Stsc: stsc,
			Stco: &mp4.StcoBox{ChunkOffset: []uint32{16, 100}},
			Stss: &mp4.StssBox{SampleNumber: []uint32{1, 3}},
		},
		timescale: 90000,
		naluSize:  4,
		cursor:    1,
		samples:   4,
	}
}

func TestMP4ReadSampleWalksChunks(t *testing.T) {
	e := tableExtractor(t)

	wantTimes := []int64{0, 33333, 66666, 100000}
	wantSync := []bool{true, false, true, false}
	for i := 0; i < 4; i++ {
		s, err := e.ReadSample()
		require.NoError(t, err)
		assert.Equal(t, wantTimes[i], s.TimeUs)
		assert.Equal(t, wantSync[i], s.Sync)
		assert.Equal(t, []byte{0, 0, 0, 1, byte(i + 1), 0x11, 0x22, 0x33}, s.Data)
	}
	_, err := e.ReadSample()
	assert.Equal(t, io.EOF, err)
}

func TestMP4SeekToPreviousSync(t *testing.T) {
	e := tableExtractor(t)

	// 70ms falls between sync samples 3 (66666us) and the clip end.
	e.SeekTo(70_000)
	s, err := e.ReadSample()
	require.NoError(t, err)
	assert.Equal(t, int64(66666), s.TimeUs)
	assert.True(t, s.Sync)

	e.SeekTo(0)
	s, err = e.ReadSample()
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.TimeUs)
}

func TestScaleToUs(t *testing.T) {
	assert.Equal(t, int64(0), scaleToUs(3000, 0))
	assert.Equal(t, int64(33333), scaleToUs(3000, 90000))
	assert.Equal(t, int64(10_000_000), scaleToUs(10_000, 1000))
}
