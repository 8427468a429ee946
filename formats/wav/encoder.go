// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audstream/audio"
)

// Encode drains s into w as a 16-bit PCM WAV file and returns the number
// of samples written. bufSize must be a positive multiple of the stream's
// channel count. Encoding stops at the end of the stream, or when the
// stream has no data available right now.
//
// The header is finalized by seeking back into w, which is not closed.
func Encode(w io.WriteSeeker, s audio.Stream, bufSize int) (int, error) {
	channels := s.Channels()
	if bufSize <= 0 || bufSize%channels != 0 {
		return 0, fmt.Errorf("%w: %d for %d channels", audio.ErrInvalidDstSize, bufSize, channels)
	}

	enc := wav.NewEncoder(w, s.Rate(), 16, channels, formatPCM)

	samples := make([]int16, bufSize)
	ib := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: s.Rate()},
		Data:           make([]int, 0, bufSize),
		SourceBitDepth: 16,
	}

	// An empty write still emits the RIFF and data chunk headers.
	if err := enc.Write(ib); err != nil {
		return 0, fmt.Errorf("wav: encoding header: %w", err)
	}

	total := 0
	for !s.EndOfStream() {
		n := s.ReadBuffer(samples)
		if n == 0 {
			break
		}

		ib.Data = ib.Data[:n]
		for i, v := range samples[:n] {
			ib.Data[i] = int(v)
		}

		if err := enc.Write(ib); err != nil {
			return total, fmt.Errorf("wav: encoding samples: %w", err)
		}
		total += n
	}

	if err := enc.Close(); err != nil {
		return total, fmt.Errorf("wav: finalizing header: %w", err)
	}

	return total, nil
}
