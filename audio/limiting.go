// SPDX-License-Identifier: EPL-2.0

package audio

// LimitingStream cuts its parent off after a fixed length.
type LimitingStream struct {
	parent owned[Stream]

	totalSamples int
	samplesRead  int
}

// NewLimitingStream caps parent at length, converted at the rate of parent.
func NewLimitingStream(parent Stream, length Timestamp, dispose DisposeAfterUse) *LimitingStream {
	return &LimitingStream{
		parent:       own(parent, dispose),
		totalSamples: length.ConvertToFramerate(parent.Rate()).TotalNumberOfFrames() * parent.Channels(),
	}
}

func (l *LimitingStream) Channels() int { return l.parent.stream.Channels() }
func (l *LimitingStream) Rate() int     { return l.parent.stream.Rate() }

func (l *LimitingStream) ReadBuffer(dst []int16) int {
	left := min(len(dst), l.totalSamples-l.samplesRead)
	if left <= 0 {
		return 0
	}

	n := l.parent.stream.ReadBuffer(dst[:left])
	l.samplesRead += n

	return n
}

func (l *LimitingStream) reachedLimit() bool { return l.samplesRead >= l.totalSamples }

func (l *LimitingStream) EndOfData() bool {
	return l.reachedLimit() || l.parent.stream.EndOfData()
}

func (l *LimitingStream) EndOfStream() bool {
	return l.reachedLimit() || l.parent.stream.EndOfStream()
}

func (l *LimitingStream) Close() error { return l.parent.Close() }
