// SPDX-License-Identifier: EPL-2.0

package audio

// LoopingStream plays a rewindable parent loops times. A loop count of 0
// loops forever.
type LoopingStream struct {
	parent owned[RewindableStream]

	loops              int
	completeIterations int
}

// NewLoopingStream wraps parent. A parent that cannot be rewound, or that
// is empty, counts as a single completed iteration.
func NewLoopingStream(parent RewindableStream, loops int, dispose DisposeAfterUse) *LoopingStream {
	l := &LoopingStream{
		parent: own(parent, dispose),
		loops:  loops,
	}

	if !parent.Rewind() || parent.EndOfStream() {
		l.collapse()
	}

	return l
}

// collapse stops looping after the current iteration.
func (l *LoopingStream) collapse() {
	l.loops = 1
	l.completeIterations = 1
}

func (l *LoopingStream) Channels() int { return l.parent.stream.Channels() }
func (l *LoopingStream) Rate() int     { return l.parent.stream.Rate() }

// CompleteIterations returns how many times the parent played to its end.
func (l *LoopingStream) CompleteIterations() int { return l.completeIterations }

func (l *LoopingStream) exhausted() bool {
	return l.loops != 0 && l.completeIterations == l.loops
}

func (l *LoopingStream) ReadBuffer(dst []int16) int {
	total := 0
	rewound := false

	for len(dst) > 0 && !l.exhausted() {
		n := l.parent.stream.ReadBuffer(dst)
		total += n

		if !l.parent.stream.EndOfStream() {
			break
		}

		// A whole iteration without a single sample would loop forever.
		if rewound && n == 0 {
			l.collapse()
			break
		}

		l.completeIterations++
		if l.completeIterations == l.loops {
			break
		}

		dst = dst[n:]

		if !l.parent.stream.Rewind() {
			l.collapse()
			break
		}
		if l.parent.stream.EndOfStream() {
			l.collapse()
		}
		rewound = true
	}

	return total
}

func (l *LoopingStream) EndOfData() bool {
	return l.exhausted() || l.parent.stream.EndOfData()
}

func (l *LoopingStream) EndOfStream() bool { return l.exhausted() }

func (l *LoopingStream) Close() error { return l.parent.Close() }

// MakeLoopingStream loops parent loops times. With a loop count of 1 the
// parent itself is returned. The returned stream owns parent.
func MakeLoopingStream(parent RewindableStream, loops int) Stream {
	if loops != 1 {
		return NewLoopingStream(parent, loops, DisposeYes)
	}
	return parent
}

// MakeLoopingSubStream loops the range [start, end) of parent loops times.
// A zero end means the length of parent. When start is not before end the
// parent is closed and nil is returned.
func MakeLoopingSubStream(parent SeekableStream, start, end Timestamp, loops int) Stream {
	if start.IsZero() && (end.IsZero() || end.Equal(parent.Length())) {
		return MakeLoopingStream(parent, loops)
	}

	if end.IsZero() {
		end = parent.Length()
	}

	if !start.Less(end) {
		logger().Warn("audio: looping range is empty",
			"start_ms", start.Msecs(), "end_ms", end.Msecs())
		if err := parent.Close(); err != nil {
			logger().Warn("audio: close parent", "err", err)
		}
		return nil
	}

	return MakeLoopingStream(NewSubSeekableStream(parent, start, end, DisposeYes), loops)
}
