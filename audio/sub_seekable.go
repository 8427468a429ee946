// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// SubSeekableStream exposes the range [start, end) of a seekable parent as
// a fresh stream starting at zero. Data of the parent past end never leaks
// through.
type SubSeekableStream struct {
	parent owned[SeekableStream]

	start  Timestamp
	pos    Timestamp
	length Timestamp
}

// NewSubSeekableStream wraps parent and seeks it to start. It panics with
// ErrInvalidRange unless start < end.
func NewSubSeekableStream(parent SeekableStream, start, end Timestamp, dispose DisposeAfterUse) *SubSeekableStream {
	if !start.Less(end) {
		panic(fmt.Errorf("%w: start %dms, end %dms", ErrInvalidRange, start.Msecs(), end.Msecs()))
	}

	rate, channels := parent.Rate(), parent.Channels()

	s := &SubSeekableStream{
		parent: own(parent, dispose),
		start:  ConvertTimeToStreamPos(start, rate, channels),
		pos:    NewTimestampFrames(0, 0, rate*channels),
	}
	s.length = ConvertTimeToStreamPos(end, rate, channels).Sub(s.start)

	if s.length.TotalNumberOfFrames()%channels != 0 {
		panic(fmt.Errorf("%w: %d samples for %d channels",
			ErrUnalignedLength, s.length.TotalNumberOfFrames(), channels))
	}

	parent.Seek(s.start)

	return s
}

func (s *SubSeekableStream) Channels() int { return s.parent.stream.Channels() }
func (s *SubSeekableStream) Rate() int     { return s.parent.stream.Rate() }

// Length returns the length of the sub range.
func (s *SubSeekableStream) Length() Timestamp { return s.length }

func (s *SubSeekableStream) ReadBuffer(dst []int16) int {
	left := min(s.length.FrameDiff(s.pos), len(dst))
	if left <= 0 {
		return 0
	}

	n := s.parent.stream.ReadBuffer(dst[:left])
	s.pos = s.pos.AddFrames(n)

	return n
}

// Seek moves to where, relative to the range start. Seeking past the range
// leaves the stream at its end and reports failure.
func (s *SubSeekableStream) Seek(where Timestamp) bool {
	s.pos = ConvertTimeToStreamPos(where, s.Rate(), s.Channels())
	if s.pos.Cmp(s.length) > 0 {
		s.pos = s.length
		return false
	}

	if s.parent.stream.Seek(s.pos.Add(s.start)) {
		return true
	}

	s.pos = s.length
	return false
}

func (s *SubSeekableStream) Rewind() bool {
	return s.Seek(NewTimestamp(0, s.Rate()))
}

// EndOfData is true once the range is consumed, or when the parent ended
// before reaching it.
func (s *SubSeekableStream) EndOfData() bool {
	return s.pos.Cmp(s.length) >= 0 || s.parent.stream.EndOfStream()
}

func (s *SubSeekableStream) EndOfStream() bool { return s.EndOfData() }

func (s *SubSeekableStream) Close() error { return s.parent.Close() }
