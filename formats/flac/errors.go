// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFLACFile indicates the input has no FLAC signature or stream info.
	ErrNotFLACFile = errors.New("not a FLAC file")

	// ErrChannelMismatch indicates a frame with fewer subframes than the
	// stream declares.
	ErrChannelMismatch = errors.New("FLAC frame channel count mismatch")
)
