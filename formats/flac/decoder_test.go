// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audstream/audio"
)

// mockFLACReader serves prebuilt blocks, each holding one sample slice per
// channel.
type mockFLACReader struct {
	blocks  [][][]int32
	next    int
	err     error
	seekErr error
}

// newMockFLACReader builds frames*channels samples where sample value is
// frame*channels+channel, split into blocks of blockSize frames.
func newMockFLACReader(channels, blockSize, frames int) *mockFLACReader {
	m := &mockFLACReader{}

	for start := 0; start < frames; start += blockSize {
		end := min(start+blockSize, frames)
		block := make([][]int32, channels)
		for ch := range block {
			for f := start; f < end; f++ {
				block[ch] = append(block[ch], int32(f*channels+ch))
			}
		}
		m.blocks = append(m.blocks, block)
	}

	return m
}

func (m *mockFLACReader) ParseNext() (*frame.Frame, error) {
	if m.err != nil {
		return nil, m.err
	}

	if m.next >= len(m.blocks) {
		return nil, io.EOF
	}

	f := &frame.Frame{}
	for _, samples := range m.blocks[m.next] {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: samples})
	}
	m.next++

	return f, nil
}

func (m *mockFLACReader) Seek(sampleNum uint64) (uint64, error) {
	if m.seekErr != nil {
		return 0, m.seekErr
	}

	var start uint64
	for i, b := range m.blocks {
		size := uint64(len(b[0]))
		if sampleNum < start+size {
			m.next = i
			return start, nil
		}
		start += size
	}

	return 0, errors.New("sample out of range")
}

func drain(s audio.Stream, bufSize int) []int16 {
	var out []int16
	buf := make([]int16, bufSize)

	for !s.EndOfStream() {
		n := s.ReadBuffer(buf)
		if n == 0 {
			break
		}
		out = append(out, buf[:n]...)
	}

	return out
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, input := range [][]byte{[]byte("This is not FLAC data"), {}} {
		_, err := Decoder{}.Decode(bytes.NewReader(input))
		if !errors.Is(err, ErrNotFLACFile) {
			t.Errorf("Decode(%q) error = %v, want %v", input, err, ErrNotFLACFile)
		}
	}
}

func TestStream_Metadata(t *testing.T) {
	t.Parallel()

	s := newStream(newMockFLACReader(2, 16, 100), 44100, 2, 16, 100)

	if s.Rate() != 44100 {
		t.Errorf("Rate() = %d, want 44100", s.Rate())
	}

	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}

	if frames := s.Length().TotalNumberOfFrames(); frames != 100 {
		t.Errorf("Length() = %d frames, want 100", frames)
	}
}

func TestStream_ReadAcrossBlocks(t *testing.T) {
	t.Parallel()

	for _, bufSize := range []int{2, 7, 30, 1000} {
		s := newStream(newMockFLACReader(2, 16, 100), 8000, 2, 16, 100)

		got := drain(s, bufSize)
		if len(got) != 200 {
			t.Fatalf("bufSize %d: read %d samples, want 200", bufSize, len(got))
		}

		for i, v := range got {
			if int(v) != i {
				t.Fatalf("bufSize %d: sample %d = %d, want %d", bufSize, i, v, i)
			}
		}

		if !s.EndOfData() || !s.EndOfStream() {
			t.Errorf("bufSize %d: stream not ended after draining", bufSize)
		}
	}
}

func TestStream_WholeFrames(t *testing.T) {
	t.Parallel()

	s := newStream(newMockFLACReader(2, 16, 100), 8000, 2, 16, 100)

	if n := s.ReadBuffer(make([]int16, 7)); n != 6 {
		t.Errorf("ReadBuffer() with 7 slots = %d, want 6", n)
	}
	if n := s.ReadBuffer(make([]int16, 1)); n != 0 {
		t.Errorf("ReadBuffer() with 1 slot = %d, want 0", n)
	}
}

func TestStream_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		input    int32
		want     int16
	}{
		{8, 127, 127 << 8},
		{8, -128, -32768},
		{16, -1234, -1234},
		{24, 8388607, 32767},
		{24, -8388608, -32768},
		{12, 2047, 2047 << 4},
	}

	for _, tt := range tests {
		m := &mockFLACReader{blocks: [][][]int32{{{tt.input}}}}
		s := newStream(m, 8000, 1, tt.bitDepth, 1)

		got := drain(s, 4)
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("%d-bit %d: decoded %v, want [%d]", tt.bitDepth, tt.input, got, tt.want)
		}
	}
}

func TestStream_Seek(t *testing.T) {
	t.Parallel()

	s := newStream(newMockFLACReader(2, 16, 100), 1000, 2, 16, 100)

	// Frame 37 sits in the block starting at frame 32.
	if !s.Seek(audio.NewTimestamp(37, 1000)) {
		t.Fatal("Seek() = false")
	}

	got := drain(s, 64)
	if len(got) != (100-37)*2 {
		t.Fatalf("read %d samples after Seek(), want %d", len(got), (100-37)*2)
	}
	if got[0] != 74 {
		t.Errorf("first sample after Seek() = %d, want 74", got[0])
	}

	if !s.Rewind() {
		t.Fatal("Rewind() = false")
	}
	if got := drain(s, 64); len(got) != 200 || got[0] != 0 {
		t.Errorf("after Rewind() read %d samples", len(got))
	}

	if !s.Seek(audio.NewTimestamp(100, 1000)) {
		t.Error("Seek() to the end = false")
	}
	if !s.EndOfStream() {
		t.Error("EndOfStream() = false after seeking to the end")
	}

	if s.Seek(audio.NewTimestamp(101, 1000)) {
		t.Error("Seek() past the end = true")
	}
}

func TestStream_SeekUnknownLength(t *testing.T) {
	t.Parallel()

	s := newStream(newMockFLACReader(1, 10, 30), 1000, 1, 16, 0)

	drain(s, 8)

	if !s.Rewind() {
		t.Fatal("Rewind() = false")
	}
	if got := drain(s, 8); len(got) != 30 {
		t.Errorf("read %d samples after Rewind(), want 30", len(got))
	}
}

func TestStream_SeekErrors(t *testing.T) {
	t.Parallel()

	m := newMockFLACReader(1, 10, 30)
	m.seekErr = errors.New("no seek table")
	s := newStream(m, 1000, 1, 16, 30)

	if s.Seek(audio.NewTimestamp(5, 1000)) {
		t.Error("Seek() = true when the reader failed")
	}
}

func TestStream_ErrorsEndStream(t *testing.T) {
	t.Parallel()

	t.Run("decode error", func(t *testing.T) {
		t.Parallel()

		m := newMockFLACReader(1, 10, 30)
		m.err = errors.New("crc mismatch")
		s := newStream(m, 8000, 1, 16, 30)

		if n := s.ReadBuffer(make([]int16, 8)); n != 0 {
			t.Errorf("ReadBuffer() = %d, want 0", n)
		}
		if !s.EndOfStream() {
			t.Error("EndOfStream() = false after a decode error")
		}
	})

	t.Run("channel mismatch", func(t *testing.T) {
		t.Parallel()

		s := newStream(newMockFLACReader(1, 10, 30), 8000, 2, 16, 30)

		if n := s.ReadBuffer(make([]int16, 8)); n != 0 {
			t.Errorf("ReadBuffer() = %d, want 0", n)
		}
		if !s.EndOfStream() {
			t.Error("EndOfStream() = false after a bad frame")
		}
	})
}

func BenchmarkStream_ReadBuffer(b *testing.B) {
	s := newStream(newMockFLACReader(2, 4096, 44100), 44100, 2, 16, 44100)
	buf := make([]int16, 4096)

	b.ReportAllocs()

	for b.Loop() {
		if s.ReadBuffer(buf) == 0 {
			s.Rewind()
		}
	}
}
