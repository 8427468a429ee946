// SPDX-License-Identifier: EPL-2.0

package aac

import "errors"

var (
	// ErrInvalidConfig indicates extra data that is not a usable
	// AudioSpecificConfig.
	ErrInvalidConfig = errors.New("aac: invalid AudioSpecificConfig")

	// ErrUnsupportedChannels indicates a channel configuration other than
	// mono or stereo.
	ErrUnsupportedChannels = errors.New("aac: only mono and stereo are supported")
)
