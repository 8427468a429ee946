// SPDX-License-Identifier: EPL-2.0

package audstream

import (
	"fmt"

	"github.com/ik5/audstream/audio"
)

// ResampleToMono16 is a high-level convenience function that resamples audio to a target
// sample rate, folds it to mono, and collects every sample.
//
// The pipeline is audio.NewResampler followed by audio.NewMonoMixer, drained
// with ReadAll in bufferSize chunks. src is read until it ends, or until it
// has nothing available right now, and is not closed.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, rate, err := audstream.ResampleToMono16(src, 8000, 4096)
//	if err != nil {
//	    panic(err)
//	}
//	// pcm16 now contains mono 16-bit PCM at 8kHz
func ResampleToMono16(src audio.Stream, targetRate, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, 0, fmt.Errorf("%w: %d", audio.ErrInvalidFramerate, targetRate)
	}

	if bufferSize <= 0 {
		return nil, targetRate, fmt.Errorf("%w: %d", audio.ErrInvalidDstSize, bufferSize)
	}

	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate, audio.DisposeNo), audio.DisposeYes)
	defer mono.Close()

	return ReadAll(mono, bufferSize), targetRate, nil
}

// ReadAll drains s in chunks of bufSize samples, rounded down to whole
// frames. It stops at the end of the stream, or when a read produces
// nothing because no data is available right now.
func ReadAll(s audio.Stream, bufSize int) []int16 {
	channels := s.Channels()

	bufSize -= bufSize % channels
	if bufSize <= 0 {
		bufSize = channels
	}

	var out []int16
	if l, ok := s.(audio.SeekableStream); ok {
		out = make([]int16, 0, l.Length().TotalNumberOfFrames()*channels)
	}

	buf := make([]int16, bufSize)
	for !s.EndOfStream() {
		n := s.ReadBuffer(buf)
		if n == 0 {
			break
		}
		out = append(out, buf[:n]...)
	}

	return out
}
