// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds stream fakes shared by the tests of this module.
package audiotest

import (
	"sync"

	"github.com/ik5/audstream/audio"
)

// MockStream is a test helper that generates audio data for testing.
// It implements audio.SeekableStream and counts how often it was closed.
//
// A MockStream built by NewTransientStream only hands out frames that were
// made available with Feed, and ends once End was called and everything
// fed was read.
type MockStream struct {
	mtx sync.Mutex

	rate     int
	channels int

	// frames is the total length in frames; negative means infinite.
	frames int
	pos    int

	waveform func(frame, channel int) int16

	transient bool
	available int
	ended     bool

	closes int

	// FailSeek makes every Seek fail.
	FailSeek bool

	// FailRewind makes every Rewind fail.
	FailRewind bool
}

// NewMockStream creates a stream of frames frames. waveform generates the
// sample for a frame index and channel.
func NewMockStream(rate, channels, frames int, waveform func(frame, channel int) int16) *MockStream {
	return &MockStream{
		rate:     rate,
		channels: channels,
		frames:   frames,
		waveform: waveform,
	}
}

// NewRampStream creates a stream whose samples count up from zero in
// interleaved order, wrapping at the int16 range. It makes ordering and
// offsets easy to check.
func NewRampStream(rate, channels, frames int) *MockStream {
	return NewMockStream(rate, channels, frames, func(frame, channel int) int16 {
		return int16(frame*channels + channel)
	})
}

// NewSilentStream creates a stream of zeros.
func NewSilentStream(rate, channels, frames int) *MockStream {
	return NewMockStream(rate, channels, frames, func(int, int) int16 { return 0 })
}

// NewConstantStream creates a stream where every sample is value.
func NewConstantStream(rate, channels, frames int, value int16) *MockStream {
	return NewMockStream(rate, channels, frames, func(int, int) int16 { return value })
}

// NewInfiniteStream creates a ramp stream that never ends.
func NewInfiniteStream(rate, channels int) *MockStream {
	return NewRampStream(rate, channels, -1)
}

// NewTransientStream creates an infinite ramp stream that starts with no
// data available.
func NewTransientStream(rate, channels int) *MockStream {
	m := NewRampStream(rate, channels, -1)
	m.transient = true
	return m
}

// Feed makes n more frames available.
func (m *MockStream) Feed(n int) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.available += n
}

// End marks that nothing more will be fed.
func (m *MockStream) End() {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.ended = true
}

// CloseCount returns how many times Close was called.
func (m *MockStream) CloseCount() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.closes
}

// Position returns the next frame index to be read.
func (m *MockStream) Position() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.pos
}

func (m *MockStream) Rate() int     { return m.rate }
func (m *MockStream) Channels() int { return m.channels }

func (m *MockStream) Close() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.closes++
	return nil
}

// limit returns the frame index reading must stop at, or -1 for none.
func (m *MockStream) limit() int {
	if m.transient {
		return m.available
	}
	return m.frames
}

func (m *MockStream) ReadBuffer(dst []int16) int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	framesToWrite := len(dst) / m.channels
	if limit := m.limit(); limit >= 0 {
		framesToWrite = min(framesToWrite, limit-m.pos)
	}
	if framesToWrite <= 0 {
		return 0
	}

	for frame := range framesToWrite {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.pos+frame, ch)
		}
	}

	m.pos += framesToWrite

	return framesToWrite * m.channels
}

func (m *MockStream) EndOfData() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	limit := m.limit()
	return limit >= 0 && m.pos >= limit
}

func (m *MockStream) EndOfStream() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.transient {
		return m.ended && m.pos >= m.available
	}
	return m.frames >= 0 && m.pos >= m.frames
}

// Seek moves to where, rounded down to a whole frame. Seeking past the end
// of a finite stream fails.
func (m *MockStream) Seek(where audio.Timestamp) bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.FailSeek {
		return false
	}

	frame := where.ConvertToFramerate(m.rate).TotalNumberOfFrames()
	if frame < 0 || (m.frames >= 0 && frame > m.frames) {
		return false
	}

	m.pos = frame
	return true
}

func (m *MockStream) Rewind() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.FailRewind {
		return false
	}

	m.pos = 0
	return true
}

// Length returns the stream length. Infinite streams report zero.
func (m *MockStream) Length() audio.Timestamp {
	return audio.NewTimestampFrames(0, max(m.frames, 0), m.rate)
}

var _ audio.SeekableStream = (*MockStream)(nil)
