// SPDX-License-Identifier: EPL-2.0

package aac

import (
	"errors"
	"testing"

	"github.com/ik5/audstream/audio"
)

// mockAACDecoder returns one canned frame per packet, keyed by the first
// byte of the packet.
type mockAACDecoder struct {
	frames map[byte][]int16
	closed int
}

var errBadUnit = errors.New("bad access unit")

func (m *mockAACDecoder) DecodeInt16(frame []byte) ([]int16, error) {
	if len(frame) == 0 {
		return nil, errBadUnit
	}
	samples, ok := m.frames[frame[0]]
	if !ok {
		return nil, errBadUnit
	}
	return samples, nil
}

func (m *mockAACDecoder) Close() { m.closed++ }

func drain(s audio.Stream) []int16 {
	var out []int16
	buf := make([]int16, 16)

	for !s.EndOfStream() {
		n := s.ReadBuffer(buf)
		if n == 0 {
			break
		}
		out = append(out, buf[:n]...)
	}

	return out
}

func equal(a, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewStream_AudioSpecificConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		asc      []byte
		rate     int
		channels int
	}{
		{"AAC-LC 44.1kHz stereo", []byte{0x12, 0x10}, 44100, 2},
		{"AAC-LC 44.1kHz mono", []byte{0x12, 0x08}, 44100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := NewStream(tt.asc)
			if err != nil {
				t.Fatalf("NewStream() error = %v", err)
			}
			defer s.Close()

			if s.Rate() != tt.rate || s.Channels() != tt.channels {
				t.Errorf("got %d Hz %d ch, want %d Hz %d ch", s.Rate(), s.Channels(), tt.rate, tt.channels)
			}
			if s.EndOfStream() {
				t.Error("EndOfStream() = true before Finish")
			}
		})
	}
}

func TestNewStream_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		asc  []byte
		want error
	}{
		{"nil", nil, ErrInvalidConfig},
		{"too short", []byte{0x12}, ErrInvalidConfig},
		{"5.1 channels", []byte{0x12, 0x30}, ErrUnsupportedChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewStream(tt.asc); !errors.Is(err, tt.want) {
				t.Errorf("NewStream(%x) error = %v, want %v", tt.asc, err, tt.want)
			}
		})
	}
}

func TestStream_DecodesPacketsInOrder(t *testing.T) {
	t.Parallel()

	dec := &mockAACDecoder{frames: map[byte][]int16{
		1: {10, -10, 20, -20},
		2: {30, -30},
		3: {},
	}}

	s, err := newStream(dec, 44100, 2)
	if err != nil {
		t.Fatalf("newStream() error = %v", err)
	}

	s.QueuePacket([]byte{3})
	s.QueuePacket([]byte{1})

	if got := drain(s); !equal(got, []int16{10, -10, 20, -20}) {
		t.Errorf("first read = %v", got)
	}
	if s.EndOfStream() {
		t.Fatal("EndOfStream() = true before Finish")
	}
	if !s.EndOfData() {
		t.Error("EndOfData() = false with nothing queued")
	}

	s.QueuePacket([]byte{2})
	s.Finish()

	if got := drain(s); !equal(got, []int16{30, -30}) {
		t.Errorf("second read = %v", got)
	}
	if !s.EndOfStream() {
		t.Error("EndOfStream() = false after Finish and drain")
	}
}

func TestStream_SkipsBadPackets(t *testing.T) {
	t.Parallel()

	dec := &mockAACDecoder{frames: map[byte][]int16{
		1: {1, 2, 3},
		2: {4, 5},
	}}

	s, err := newStream(dec, 22050, 1)
	if err != nil {
		t.Fatalf("newStream() error = %v", err)
	}

	s.QueuePacket(nil)
	s.QueuePacket([]byte{9})
	s.QueuePacket([]byte{1})
	s.QueuePacket([]byte{2})
	s.Finish()

	if got := drain(s); !equal(got, []int16{1, 2, 3, 4, 5}) {
		t.Errorf("read %v, want [1 2 3 4 5]", got)
	}
}

func TestStream_TrimsPartialFrame(t *testing.T) {
	t.Parallel()

	dec := &mockAACDecoder{frames: map[byte][]int16{1: {1, 2, 3}}}

	s, err := newStream(dec, 44100, 2)
	if err != nil {
		t.Fatalf("newStream() error = %v", err)
	}

	s.QueuePacket([]byte{1})
	s.Finish()

	if got := drain(s); !equal(got, []int16{1, 2}) {
		t.Errorf("read %v, want [1 2]", got)
	}
}

func TestStream_Close(t *testing.T) {
	t.Parallel()

	dec := &mockAACDecoder{frames: map[byte][]int16{1: {1}}}

	s, err := newStream(dec, 8000, 1)
	if err != nil {
		t.Fatalf("newStream() error = %v", err)
	}
	s.QueuePacket([]byte{1})

	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	_ = s.Close()

	if dec.closed != 1 {
		t.Errorf("decoder closed %d times, want 1", dec.closed)
	}
}

func TestNewStream_BadParameters(t *testing.T) {
	t.Parallel()

	if _, err := newStream(&mockAACDecoder{}, 44100, 0); !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("0 channels: error = %v, want %v", err, ErrUnsupportedChannels)
	}
	if _, err := newStream(&mockAACDecoder{}, 0, 2); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("0 Hz: error = %v, want %v", err, ErrInvalidConfig)
	}
}

func BenchmarkStream_QueuePacket(b *testing.B) {
	dec := &mockAACDecoder{frames: map[byte][]int16{1: make([]int16, 2048)}}
	s, _ := newStream(dec, 44100, 2)
	buf := make([]int16, 2048)

	b.ReportAllocs()

	for b.Loop() {
		s.QueuePacket([]byte{1})
		s.ReadBuffer(buf)
	}
}
