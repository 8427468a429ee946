// SPDX-License-Identifier: EPL-2.0

// Package audio provides pull-based audio streams and the wrappers that
// compose them.
//
// # Stream Interface
//
// Every stream produces interleaved signed 16-bit samples:
//
//	type Stream interface {
//	    ReadBuffer(dst []int16) int
//	    Channels() int
//	    Rate() int
//	    EndOfData() bool
//	    EndOfStream() bool
//	    Close() error
//	}
//
// ReadBuffer never blocks. A short count together with EndOfData means no
// data is available right now; only EndOfStream means the stream is over.
// RewindableStream adds Rewind, SeekableStream adds Seek and Length.
//
// # Time
//
// Timestamp holds an exact time as seconds plus frames at a framerate, so
// millisecond values and frame counts mix without rounding drift:
//
//	start := audio.NewTimestamp(1500, 44100)      // 1.5s
//	end := audio.NewTimestampFrames(2, 0, 44100)  // 2s
//	frames := end.FrameDiff(start)                // 22050
//
// ConvertTimeToStreamPos turns a time into an interleaved sample position
// that never splits a frame.
//
// # Wrappers
//
// Wrappers take a parent stream and a DisposeAfterUse policy. With
// DisposeYes the wrapper owns the parent and closes it exactly once.
//
//   - LoopingStream plays a rewindable stream a number of times, 0 for ever
//   - SubSeekableStream exposes a time range of a seekable stream
//   - SubLoopingStream loops a range of a seekable stream
//   - QueuingStream concatenates streams; producers may append concurrently
//   - LimitingStream stops after a fixed length
//   - ReversedStereoStream swaps left and right
//   - NullStream plays nothing
//   - Resampler and MonoMixer convert rate and channel layout
//
// MakeLoopingStream and MakeLoopingSubStream pick the right looping wrapper.
//
// # Raw PCM
//
// PCMStream reads raw 8 or 16-bit data described by PCMFlags. Queues accept
// raw buffers directly with QueueBuffer, and NewPacketizedPCMStream builds a
// stream that is fed packet by packet.
//
// # Format Registry
//
// A Registry maps file extensions to decoders in priority order.
// OpenStreamFile tries every registered extension for a base name and
// returns the first stream that decodes:
//
//	registry := audio.NewRegistry()
//	registry.Register("WAV", ".wav", wav.Decoder{})
//	s, err := registry.OpenStreamFile(os.DirFS("sounds"), "intro")
//
// # Errors
//
// Calls that would corrupt a stream, such as queueing a stream with another
// rate or building an empty range, panic with an error wrapping one of the
// package sentinels (ErrMismatchedParameters, ErrInvalidRange and so on).
// Decoders and file lookups return errors normally.
//
// # Logging
//
// The package logs through log/slog. SetLogger replaces the default logger.
package audio
