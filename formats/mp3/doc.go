// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MPEG audio.
// go-mp3 always produces 16-bit little-endian stereo PCM, mono files are
// duplicated to both channels. The decoder is itself an io.ReadSeeker, so
// the returned stream decodes on demand and seeks without buffering
// decoded audio:
//
//	f, _ := os.Open("audio.mp3")
//	stream, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int16, 4096)
//	for !stream.EndOfStream() {
//	    n := stream.ReadBuffer(buf)
//	    // use buf[:n]
//	}
//
// Inputs that are not an io.ReadSeeker are read into memory first. The
// stream does not close the input, the caller keeps ownership of it.
//
// To convert to mono or resample, use the audio package:
//
//	resampled := audio.NewResampler(stream, 8000, audio.DisposeYes)
//	mono := audio.NewMonoMixer(resampled, audio.DisposeYes)
//
// Decode fails with ErrNotMP3File when no MPEG frame header is found.
package mp3
