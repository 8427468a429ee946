// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac. Frames are decoded one at a
// time as the stream is read and narrowed to 16 bits. Seeking goes through
// the FLAC seek table, then skips into the frame holding the target:
//
//	f, _ := os.Open("audio.flac")
//	stream, err := flac.Decoder{}.Decode(f)
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
// Decode fails with ErrNotFLACFile when the input has no FLAC signature.
// A frame that cannot be decoded ends the stream; the cause is logged at
// debug level through audio.Logger.
package flac
