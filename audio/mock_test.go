package audio

import (
	"math"
)

// mockStream is a test helper that generates audio data for testing.
// It implements SeekableStream and can generate various waveforms.
type mockStream struct {
	rate     int
	channels int
	frames   int // Total frames to generate
	pos      int // Frames generated so far
	waveform func(frame int, channel int) int16
	closed   int
}

// newMockStream creates a new mock audio stream.
// waveform is a function that generates sample values given frame index and channel.
func newMockStream(rate, channels, frames int, waveform func(frame int, channel int) int16) *mockStream {
	return &mockStream{
		rate:     rate,
		channels: channels,
		frames:   frames,
		waveform: waveform,
	}
}

// newSilentStream creates a mock stream that generates silence (all zeros).
func newSilentStream(rate, channels, frames int) *mockStream {
	return newMockStream(rate, channels, frames, func(int, int) int16 { return 0 })
}

// newSineStream creates a mock stream that generates a sine wave at half scale.
func newSineStream(rate, channels, frames int, frequency float64) *mockStream {
	return newMockStream(rate, channels, frames, func(frame int, channel int) int16 {
		t := float64(frame) / float64(rate)
		return int16(16384 * math.Sin(2*math.Pi*frequency*t))
	})
}

// newConstantStream creates a mock stream with constant value.
func newConstantStream(rate, channels, frames int, value int16) *mockStream {
	return newMockStream(rate, channels, frames, func(int, int) int16 { return value })
}

func (m *mockStream) Rate() int         { return m.rate }
func (m *mockStream) Channels() int     { return m.channels }
func (m *mockStream) EndOfData() bool   { return m.pos >= m.frames }
func (m *mockStream) EndOfStream() bool { return m.pos >= m.frames }
func (m *mockStream) Length() Timestamp { return NewTimestampFrames(0, m.frames, m.rate) }

func (m *mockStream) Close() error {
	m.closed++
	return nil
}

func (m *mockStream) Rewind() bool {
	m.pos = 0
	return true
}

func (m *mockStream) Seek(where Timestamp) bool {
	frame := where.ConvertToFramerate(m.rate).TotalNumberOfFrames()
	if frame < 0 || frame > m.frames {
		return false
	}
	m.pos = frame
	return true
}

func (m *mockStream) ReadBuffer(dst []int16) int {
	framesToWrite := min(len(dst)/m.channels, m.frames-m.pos)
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

// readAll drains s with a buffer of bufSize samples until a read returns
// nothing, giving up after limit samples.
func readAll(s Stream, bufSize, limit int) []int16 {
	var out []int16
	buf := make([]int16, bufSize)

	for len(out) < limit {
		n := s.ReadBuffer(buf)
		if n == 0 {
			break
		}
		out = append(out, buf[:n]...)
	}

	return out
}
