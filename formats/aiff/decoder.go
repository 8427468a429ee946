// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/utils"
)

// readChunk is the number of samples pulled from the decoder at a time.
const readChunk = 4096

// aiffReader is the part of aiff.Decoder the stream needs, so tests can
// replace it.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder decodes AIFF files. The whole file is decoded up front and
// played from memory, so the returned stream is seekable.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.SeekableStream, error) {
	rs, err := utils.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("aiff: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	return decodeAll(dec, int(dec.BitDepth))
}

// decodeAll drains dec into a 16-bit PCM stream.
func decodeAll(dec aiffReader, bitDepth int) (*audio.PCMStream, error) {
	format := dec.Format()
	if format == nil || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	if format.NumChannels < 1 || format.NumChannels > 2 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, format.NumChannels)
	}

	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	buf := &goaudio.IntBuffer{
		Format:         format,
		Data:           make([]int, readChunk),
		SourceBitDepth: bitDepth,
	}

	var data []byte
	for {
		buf.Data = buf.Data[:readChunk]

		n, err := dec.PCMBuffer(buf)
		data = appendPCM16(data, buf.Data[:n], bitDepth)

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("aiff: reading PCM data: %w", err)
		}
	}

	flags := audio.Flag16Bits | audio.FlagLittleEndian
	if format.NumChannels == 2 {
		flags |= audio.FlagStereo
	}

	return audio.NewPCMStream(data, format.SampleRate, flags), nil
}

// appendPCM16 appends samples as 16-bit little-endian PCM. AIFF stores
// 8-bit samples signed, unlike WAV.
func appendPCM16(dst []byte, samples []int, bitDepth int) []byte {
	for _, v := range samples {
		var s int16
		if bitDepth == 8 {
			s = int16(int8(uint8(v))) << 8
		} else {
			s = utils.ScaleToInt16(v, bitDepth)
		}
		dst = binary.LittleEndian.AppendUint16(dst, uint16(s))
	}

	return dst
}
