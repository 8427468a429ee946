// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/utils"
)

// formatPCM is the WAVE_FORMAT_PCM tag of the fmt chunk.
const formatPCM = 1

// Decoder decodes RIFF WAVE files holding 8, 16, 24 or 32-bit integer PCM,
// mono or stereo. Samples are narrowed to 16 bits.
type Decoder struct{}

// Decode reads the whole file and returns a seekable stream over its
// samples. Inputs that cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.SeekableStream, error) {
	rs, err := utils.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()

	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	if dec.NumChans > 2 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, dec.NumChans)
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: reading PCM data: %w", err)
	}

	flags := audio.Flag16Bits | audio.FlagLittleEndian
	if dec.NumChans == 2 {
		flags |= audio.FlagStereo
	}

	data := utils.IntBufferToPCM16(buf, int(dec.BitDepth))

	return audio.NewPCMStream(data, int(dec.SampleRate), flags), nil
}
