// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ReversedStereoStream swaps the left and right channel of a stereo stream.
type ReversedStereoStream struct {
	parent owned[Stream]
}

// NewReversedStereoStream wraps parent. It panics with ErrNotStereo unless
// parent has two channels; see MakeReversedStereoStream for the checked form.
func NewReversedStereoStream(parent Stream, dispose DisposeAfterUse) *ReversedStereoStream {
	if parent.Channels() != 2 {
		panic(fmt.Errorf("%w: %d channels", ErrNotStereo, parent.Channels()))
	}

	return &ReversedStereoStream{parent: own(parent, dispose)}
}

// MakeReversedStereoStream reverses parent when it is stereo and returns it
// unmodified otherwise.
func MakeReversedStereoStream(parent Stream, dispose DisposeAfterUse) Stream {
	if parent == nil || parent.Channels() != 2 {
		return parent
	}

	return NewReversedStereoStream(parent, dispose)
}

func (r *ReversedStereoStream) Channels() int { return 2 }
func (r *ReversedStereoStream) Rate() int     { return r.parent.stream.Rate() }

func (r *ReversedStereoStream) ReadBuffer(dst []int16) int {
	n := r.parent.stream.ReadBuffer(dst)

	for i := 0; i+1 < n; i += 2 {
		dst[i], dst[i+1] = dst[i+1], dst[i]
	}

	return n
}

func (r *ReversedStereoStream) EndOfData() bool   { return r.parent.stream.EndOfData() }
func (r *ReversedStereoStream) EndOfStream() bool { return r.parent.stream.EndOfStream() }
func (r *ReversedStereoStream) Close() error      { return r.parent.Close() }
