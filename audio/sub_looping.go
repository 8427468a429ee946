// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// SubLoopingStream plays the range [loopStart, loopEnd) of a seekable
// parent loops times. A loop count of 0 loops forever.
type SubLoopingStream struct {
	parent owned[SeekableStream]

	loops int

	pos       Timestamp
	loopStart Timestamp
	loopEnd   Timestamp

	done bool
}

// NewSubLoopingStream wraps parent. It panics with ErrInvalidRange unless
// loopStart < loopEnd still holds once both are rounded down to whole
// frames of parent. The parent is rewound and positioned at loopStart;
// when that fails the stream is done without producing anything.
func NewSubLoopingStream(parent SeekableStream, loops int, loopStart, loopEnd Timestamp, dispose DisposeAfterUse) *SubLoopingStream {
	rate, channels := parent.Rate(), parent.Channels()

	start := ConvertTimeToStreamPos(loopStart, rate, channels)
	end := ConvertTimeToStreamPos(loopEnd, rate, channels)
	if !start.Less(end) {
		panic(fmt.Errorf("%w: loop start %dms, loop end %dms at %d Hz",
			ErrInvalidRange, loopStart.Msecs(), loopEnd.Msecs(), rate))
	}

	s := &SubLoopingStream{
		parent:    own(parent, dispose),
		loops:     loops,
		pos:       NewTimestampFrames(0, 0, rate*channels),
		loopStart: start,
		loopEnd:   end,
	}

	if !parent.Rewind() {
		s.done = true
		return s
	}

	if !s.loopStart.IsZero() {
		if !parent.Seek(s.loopStart) {
			s.done = true
			return s
		}
		s.pos = s.loopStart
	}

	return s
}

func (s *SubLoopingStream) Channels() int { return s.parent.stream.Channels() }
func (s *SubLoopingStream) Rate() int     { return s.parent.stream.Rate() }

func (s *SubLoopingStream) ReadBuffer(dst []int16) int {
	total := 0

	for !s.done && len(dst) > 0 {
		left := min(s.loopEnd.FrameDiff(s.pos), len(dst))
		n := s.parent.stream.ReadBuffer(dst[:left])
		s.pos = s.pos.AddFrames(n)
		total += n

		// The parent ended before the loop end: the media is truncated.
		if n < left && s.parent.stream.EndOfStream() {
			s.done = true
			break
		}

		if !s.pos.Equal(s.loopEnd) {
			break
		}

		// A pass that produced nothing cannot make progress by looping.
		if n == 0 {
			s.done = true
			break
		}

		if s.loops != 0 {
			s.loops--
			if s.loops == 0 {
				s.done = true
				break
			}
		}

		if !s.parent.stream.Seek(s.loopStart) {
			s.done = true
			break
		}

		s.pos = s.loopStart
		dst = dst[left:]
	}

	return total
}

// EndOfData is true when done or when the parent has run out of data for
// now.
func (s *SubLoopingStream) EndOfData() bool {
	return s.done || s.parent.stream.EndOfData()
}

// EndOfStream is true only after all iterations, or after an unrecoverable
// seek failure.
func (s *SubLoopingStream) EndOfStream() bool { return s.done }

func (s *SubLoopingStream) Close() error { return s.parent.Close() }
