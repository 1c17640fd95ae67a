// SPDX-License-Identifier: GPL-2.0-or-later

package media

import (
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/pkg/errors"
)

const (
	mimeH264 = "video/avc"
	mimeHEVC = "video/hevc"
)

// mp4Extractor reads samples of the first video track of a progressive
// MP4 file. Sample payloads are read straight from the file at the
// chunk offsets the sample tables give, so the mdat is never held in
// memory.
type mp4Extractor struct {
	f         *os.File
	stbl      *mp4.StblBox
	timescale uint32
	info      TrackInfo
	initData  []byte
	naluSize  int

	cursor  int // 1-based sample number of the next sample
	samples int
}

func newMP4Extractor(path string) (Extractor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open media file")
	}
	e, err := newMP4ExtractorFile(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return e, nil
}

func newMP4ExtractorFile(f *os.File) (*mp4Extractor, error) {
	parsed, err := mp4.DecodeFile(f, mp4.WithDecodeMode(mp4.DecModeLazyMdat))
	if err != nil {
		return nil, errors.Wrap(err, "parse mp4")
	}
	if parsed.Moov == nil {
		return nil, errors.New("no moov box")
	}
	if parsed.IsFragmented() {
		return nil, errors.New("fragmented mp4 not supported")
	}

	var trak *mp4.TrakBox
	for _, t := range parsed.Moov.Traks {
		if t.Mdia != nil && t.Mdia.Hdlr != nil && t.Mdia.Hdlr.HandlerType == "vide" {
			trak = t
			break
		}
	}
	if trak == nil {
		return nil, errors.New("no video track")
	}
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Mdhd == nil {
		return nil, errors.New("video track missing sample tables")
	}
	stbl := trak.Mdia.Minf.Stbl
	if stbl.Stsz == nil || stbl.Stts == nil || stbl.Stsc == nil ||
		(stbl.Stco == nil && stbl.Co64 == nil) {
		return nil, errors.New("video track missing sample tables")
	}

	e := &mp4Extractor{
		f:         f,
		stbl:      stbl,
		timescale: trak.Mdia.Mdhd.Timescale,
		naluSize:  4,
		cursor:    1,
		samples:   int(stbl.Stsz.SampleNumber),
	}
	e.info = TrackInfo{
		DurationUs: scaleToUs(trak.Mdia.Mdhd.Duration, e.timescale),
	}
	if trak.Tkhd != nil {
		e.info.Width = int32(trak.Tkhd.Width >> 16)
		e.info.Height = int32(trak.Tkhd.Height >> 16)
	}

	if stbl.Stsd != nil {
		switch {
		case stbl.Stsd.AvcX != nil:
			e.info.MIME = mimeH264
			if e.info.Width == 0 {
				e.info.Width = int32(stbl.Stsd.AvcX.Width)
				e.info.Height = int32(stbl.Stsd.AvcX.Height)
			}
			if avcC := stbl.Stsd.AvcX.AvcC; avcC != nil {
				e.initData = ParameterSetsAnnexB(avcC.SPSnalus, avcC.PPSnalus)
			}
		case stbl.Stsd.HvcX != nil:
			e.info.MIME = mimeHEVC
			if e.info.Width == 0 {
				e.info.Width = int32(stbl.Stsd.HvcX.Width)
				e.info.Height = int32(stbl.Stsd.HvcX.Height)
			}
		}
	}
	if e.info.MIME == "" {
		return nil, errors.New("unsupported video codec")
	}
	return e, nil
}

func scaleToUs(v uint64, timescale uint32) int64 {
	if timescale == 0 {
		return 0
	}
	return int64(v * 1_000_000 / uint64(timescale))
}

func (e *mp4Extractor) Info() TrackInfo { return e.info }

func (e *mp4Extractor) InitData() []byte { return e.initData }

// sampleOffset resolves the absolute file offset of a 1-based sample
// number through the chunk tables.
func (e *mp4Extractor) sampleOffset(sampleNr int) (int64, error) {
	chunkNr, firstInChunk, err := e.stbl.Stsc.ChunkNrFromSampleNr(sampleNr)
	if err != nil {
		return 0, errors.Wrap(err, "resolve chunk")
	}
	var offset int64
	if e.stbl.Stco != nil {
		offset = int64(e.stbl.Stco.ChunkOffset[chunkNr-1])
	} else {
		offset = int64(e.stbl.Co64.ChunkOffset[chunkNr-1])
	}
	for nr := firstInChunk; nr < sampleNr; nr++ {
		offset += int64(e.stbl.Stsz.GetSampleSize(nr))
	}
	return offset, nil
}

func (e *mp4Extractor) ReadSample() (Sample, error) {
	if e.cursor > e.samples {
		return Sample{}, io.EOF
	}
	nr := e.cursor
	offset, err := e.sampleOffset(nr)
	if err != nil {
		return Sample{}, err
	}
	size := e.stbl.Stsz.GetSampleSize(nr)
	raw := make([]byte, size)
	if _, err := e.f.ReadAt(raw, offset); err != nil {
		return Sample{}, errors.Wrap(err, "read sample")
	}
	decTime, _ := e.stbl.Stts.GetDecodeTime(uint32(nr))
	s := Sample{
		Data:   AVCCToAnnexB(raw, e.naluSize),
		TimeUs: scaleToUs(decTime, e.timescale),
		Sync:   e.isSync(nr),
	}
	e.cursor++
	return s, nil
}

func (e *mp4Extractor) isSync(sampleNr int) bool {
	if e.stbl.Stss == nil {
		return true
	}
	return e.stbl.Stss.IsSyncSample(uint32(sampleNr))
}

func (e *mp4Extractor) SeekTo(timeUs int64) {
	target := 1
	for nr := 1; nr <= e.samples; nr++ {
		if !e.isSync(nr) {
			continue
		}
		decTime, _ := e.stbl.Stts.GetDecodeTime(uint32(nr))
		if scaleToUs(decTime, e.timescale) > timeUs {
			break
		}
		target = nr
	}
	e.cursor = target
}

func (e *mp4Extractor) Close() error {
	return e.f.Close()
}
