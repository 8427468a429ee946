// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis. Packets are decoded
// as the stream is read and converted from float32 to int16, so memory use
// does not grow with the file. Seeking is done by the Ogg reader on
// granule positions:
//
//	f, _ := os.Open("audio.ogg")
//	stream, err := vorbis.Decoder{}.Decode(f)
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
// Samples are interleaved in Vorbis channel order, for stereo files:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// Inputs that are not an io.ReadSeeker are read into memory first. A
// decoding error ends the stream; it is logged at debug level through
// audio.Logger.
package vorbis
