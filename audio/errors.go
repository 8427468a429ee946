// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrStreamNotFound is returned when no registered format could open a
	// file for a base name.
	ErrStreamNotFound = errors.New("could not open audio stream")

	ErrInvalidFramerate = errors.New("framerate must be positive")
)

// Usage errors. These are raised with panic since they are defects in the
// calling code and continuing would corrupt the stream state.
var (
	// ErrMismatchedParameters is raised when a stream with a different
	// rate or channel count is queued.
	ErrMismatchedParameters = errors.New("stream has mismatched parameters")

	// ErrQueueFinished is raised when appending to a finished queue.
	ErrQueueFinished = errors.New("queue already finished")

	// ErrInvalidRange is raised when a range start is not before its end.
	ErrInvalidRange = errors.New("range start must be before end")

	// ErrUnalignedLength is raised when a sub-range length does not divide
	// evenly into channels.
	ErrUnalignedLength = errors.New("range length is not frame aligned")

	// ErrNotStereo is raised when a stereo only wrapper gets another layout.
	ErrNotStereo = errors.New("stream is not stereo")
)
