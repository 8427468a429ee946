// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV audio files.
//
// Decoding is done with github.com/go-audio/wav. Integer PCM data at 8, 16,
// 24 or 32 bits per sample, mono or stereo, is narrowed to 16 bits and
// played through an audio.PCMStream, so decoded files are seekable:
//
//	f, _ := os.Open("audio.wav")
//	stream, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
//
//	buf := make([]int16, 4096)
//	for !stream.EndOfStream() {
//	    n := stream.ReadBuffer(buf)
//	    // use buf[:n]
//	}
//
// Two writers are provided. WriteWAV16 writes a canonical 44 byte header
// followed by the samples and needs no seeking. Encode drains an
// audio.Stream through the go-audio encoder and patches the header sizes
// when it is done, so it needs an io.WriteSeeker such as *os.File.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF WAVE file
//   - ErrOnlyPCMSupported: the fmt chunk is not integer PCM
//   - ErrUnsupportedChannels: more than two channels
//   - ErrUnsupportedBitDepth: a sample size other than 8, 16, 24 or 32 bits
//
// All of them are wrapped with context, test them with errors.Is.
package wav
