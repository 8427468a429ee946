// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// DisposeAfterUse tells a wrapper whether it owns the stream it was given.
type DisposeAfterUse int

const (
	// DisposeNo means the caller keeps ownership; the wrapper never closes
	// the stream.
	DisposeNo DisposeAfterUse = iota

	// DisposeYes means the wrapper owns the stream and closes it exactly
	// once when the wrapper itself is closed or done with it.
	DisposeYes
)

func (d DisposeAfterUse) String() string {
	switch d {
	case DisposeNo:
		return "no"
	case DisposeYes:
		return "yes"
	default:
		return fmt.Sprintf("DisposeAfterUse(%d)", int(d))
	}
}

// owned holds a child stream with its dispose policy.
type owned[S Stream] struct {
	stream  S
	dispose DisposeAfterUse
	closed  bool
}

func own[S Stream](s S, dispose DisposeAfterUse) owned[S] {
	return owned[S]{stream: s, dispose: dispose}
}

// Close closes the child when it is owned. Later calls do nothing.
func (o *owned[S]) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true

	if o.dispose != DisposeYes {
		return nil
	}

	if err := o.stream.Close(); err != nil {
		return fmt.Errorf("close child stream: %w", err)
	}

	return nil
}
