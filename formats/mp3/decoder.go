// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/utils"
)

// mp3Reader is the part of gomp3.Decoder the stream needs, so tests can
// replace it. Reads yield 16-bit little-endian stereo PCM.
type mp3Reader interface {
	io.ReadSeeker
	SampleRate() int
}

// pcmFlags describes what go-mp3 produces for every file, mono or not.
const pcmFlags = audio.Flag16Bits | audio.FlagLittleEndian | audio.FlagStereo

// Decoder decodes MPEG-1/2 Layer 3 files. Frames are decoded while the
// stream is read, seeking is done by go-mp3 on the compressed input.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.SeekableStream, error) {
	rs, err := utils.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	dec, err := gomp3.NewDecoder(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newStream(dec)
}

func newStream(dec mp3Reader) (*audio.PCMStream, error) {
	s, err := audio.NewPCMReaderStream(dec, dec.SampleRate(), pcmFlags, audio.DisposeNo)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return s, nil
}
