// SPDX-License-Identifier: GPL-2.0-or-later

package media

import "bytes"

var startCode = []byte{0x00, 0x00, 0x00, 0x01}

// AVCCToAnnexB rewrites length-prefixed NAL units to start-code
// prefixed ones. naluSize is the length prefix width in bytes, four
// for every avcC this player produces. Truncated input is cut off at
// the last complete NAL unit.
func AVCCToAnnexB(data []byte, naluSize int) []byte {
	var out bytes.Buffer
	out.Grow(len(data) + 16)
	for i := 0; i+naluSize <= len(data); {
		var n int
		for j := 0; j < naluSize; j++ {
			n = n<<8 | int(data[i+j])
		}
		i += naluSize
		if n <= 0 || i+n > len(data) {
			break
		}
		out.Write(startCode)
		out.Write(data[i : i+n])
		i += n
	}
	return out.Bytes()
}

// ParameterSetsAnnexB concatenates SPS and PPS NAL units with start
// codes, ready to be fed to a decoder before the first access unit.
func ParameterSetsAnnexB(sps, pps [][]byte) []byte {
	var out bytes.Buffer
	for _, nalu := range sps {
		out.Write(startCode)
		out.Write(nalu)
	}
	for _, nalu := range pps {
		out.Write(startCode)
		out.Write(nalu)
	}
	return out.Bytes()
}
