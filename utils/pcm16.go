// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"

	goaudio "github.com/go-audio/audio"
)

// IntBufferToPCM16 packs the samples of buf, stored at bitDepth bits, as
// signed 16-bit little-endian PCM. 8-bit samples are taken as unsigned,
// the way go-audio decodes them.
func IntBufferToPCM16(buf *goaudio.IntBuffer, bitDepth int) []byte {
	out := make([]byte, len(buf.Data)*2)

	for i, v := range buf.Data {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(ScaleToInt16(v, bitDepth)))
	}

	return out
}

// ScaleToInt16 rescales an integer sample of bitDepth bits to 16 bits.
func ScaleToInt16(v, bitDepth int) int16 {
	switch {
	case bitDepth == 8:
		return int16((v - 128) << 8)
	case bitDepth < 16:
		return int16(v << (16 - bitDepth))
	default:
		return int16(v >> (bitDepth - 16))
	}
}
