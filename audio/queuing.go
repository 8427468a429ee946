// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"sync"
)

// QueuingStream concatenates a FIFO of streams into one stream. Producers
// append with QueueStream or QueueBuffer while a consumer reads; all methods
// are safe for concurrent use.
type QueuingStream struct {
	rate     int
	channels int

	// finished is set by Finish only.
	finished bool

	mtx   sync.Mutex
	queue []owned[Stream]
}

// NewQueuingStream returns an empty queue. Everything queued into it must
// have exactly this rate and channel count.
func NewQueuingStream(rate, channels int) *QueuingStream {
	return &QueuingStream{
		rate:     rate,
		channels: channels,
	}
}

func (q *QueuingStream) Channels() int { return q.channels }
func (q *QueuingStream) Rate() int     { return q.rate }

// QueueStream appends s. It panics with ErrQueueFinished after Finish and
// with ErrMismatchedParameters when the rate or channel count of s differ.
// With DisposeYes the queue owns s even when it panics, and closes it
// before doing so.
func (q *QueuingStream) QueueStream(s Stream, dispose DisposeAfterUse) {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	var err error
	switch {
	case q.finished:
		err = ErrQueueFinished
	case s.Rate() != q.rate || s.Channels() != q.channels:
		err = fmt.Errorf("%w: got %d Hz/%d ch, want %d Hz/%d ch",
			ErrMismatchedParameters, s.Rate(), s.Channels(), q.rate, q.channels)
	}

	if err != nil {
		rejected := own(s, dispose)
		if cerr := rejected.Close(); cerr != nil {
			logger().Warn("audio: closing rejected stream", "err", cerr)
		}
		panic(err)
	}

	q.queue = append(q.queue, own(s, dispose))
}

// QueueBuffer wraps raw PCM data as a stream at the queue rate and appends
// it. The queue always owns the wrapping stream.
func (q *QueuingStream) QueueBuffer(data []byte, flags PCMFlags) {
	q.QueueStream(NewPCMStream(data, q.rate, flags), DisposeYes)
}

// Finish marks that no more streams will be queued. It cannot be undone.
func (q *QueuingStream) Finish() {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	q.finished = true
}

// NumQueuedStreams returns the number of streams not fully consumed yet.
func (q *QueuingStream) NumQueuedStreams() int {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	return len(q.queue)
}

// ReadBuffer drains queued streams in order. Streams that ended are
// dropped (and closed when owned); a stream that is only out of data for
// now stops the read early.
func (q *QueuingStream) ReadBuffer(dst []int16) int {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	decoded := 0

	for decoded < len(dst) && len(q.queue) > 0 {
		front := &q.queue[0]
		decoded += front.stream.ReadBuffer(dst[decoded:])

		if front.stream.EndOfStream() {
			q.pop()
			continue
		}

		if front.stream.EndOfData() {
			break
		}
	}

	return decoded
}

// pop removes the front entry, closing it when owned. Must hold mtx.
func (q *QueuingStream) pop() {
	if err := q.queue[0].Close(); err != nil {
		logger().Warn("audio: close queued stream", "err", err)
	}

	q.queue[0] = owned[Stream]{}
	q.queue = q.queue[1:]
}

// EndOfData is true when the queue is empty or its front stream has no
// data right now.
func (q *QueuingStream) EndOfData() bool {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	return len(q.queue) == 0 || q.queue[0].stream.EndOfData()
}

// EndOfStream is true once Finish was called and the queue is drained.
func (q *QueuingStream) EndOfStream() bool {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	return q.finished && len(q.queue) == 0
}

// Close drops every remaining entry, closing the owned ones.
func (q *QueuingStream) Close() error {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	var errs []error
	for len(q.queue) > 0 {
		if err := q.queue[0].Close(); err != nil {
			errs = append(errs, err)
		}
		q.queue[0] = owned[Stream]{}
		q.queue = q.queue[1:]
	}

	return errors.Join(errs...)
}
