// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the file. Integer PCM
// samples of 8, 16, 24 or 32 bits, mono or stereo, are narrowed to 16 bits
// and played from memory through an audio.PCMStream:
//
//	f, _ := os.Open("audio.aif")
//	stream, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
//
//	buf := make([]int16, 4096)
//	n := stream.ReadBuffer(buf)
//
// AIFF stores samples big-endian and 8-bit samples signed. The decoder
// takes care of both, the stream always yields native int16 values.
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: a sample size other than 8, 16, 24 or 32 bits
//   - ErrUnsupportedChannels: more than two channels
//   - ErrUnsupportedAiffLayout: the COMM chunk has no usable format
//
// AIFF writing is not supported. Compressed AIFF-C is not supported.
package aiff
