// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// PCMStream plays raw PCM data described by PCMFlags from an
// io.ReadSeeker. 8-bit samples are widened to 16 bits.
type PCMStream struct {
	r       io.ReadSeeker
	dispose DisposeAfterUse
	closed  bool

	rate     int
	channels int
	flags    PCMFlags

	// dataStart is the reader offset of the first sample.
	dataStart int64

	// Counted in samples, not frames.
	total int64
	pos   int64

	buf []byte

	// failed is set when the reader returned an error.
	failed bool
}

// NewPCMStream returns a stream over data. A trailing partial frame is
// ignored.
func NewPCMStream(data []byte, rate int, flags PCMFlags) *PCMStream {
	// Seeking a bytes.Reader to a non-negative offset cannot fail.
	s, _ := NewPCMReaderStream(bytes.NewReader(data), rate, flags, DisposeNo)
	return s
}

// NewPCMReaderStream returns a stream over r, starting at its current
// offset and ending at its end. When dispose is DisposeYes and r is an
// io.Closer, Close closes r.
func NewPCMReaderStream(r io.ReadSeeker, rate int, flags PCMFlags, dispose DisposeAfterUse) (*PCMStream, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("pcm: current offset: %w", err)
	}

	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("pcm: seek end: %w", err)
	}

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("pcm: seek start: %w", err)
	}

	channels := int64(flags.Channels())
	samples := (end - start) / int64(flags.SampleSize())

	return &PCMStream{
		r:         r,
		dispose:   dispose,
		rate:      rate,
		channels:  int(channels),
		flags:     flags,
		dataStart: start,
		total:     samples - samples%channels,
	}, nil
}

func (s *PCMStream) Channels() int   { return s.channels }
func (s *PCMStream) Rate() int       { return s.rate }
func (s *PCMStream) Flags() PCMFlags { return s.flags }

// Length returns the playing time of the data.
func (s *PCMStream) Length() Timestamp {
	return NewTimestampFrames(0, int(s.total/int64(s.channels)), s.rate)
}

func (s *PCMStream) ReadBuffer(dst []int16) int {
	if s.failed {
		return 0
	}

	want := min(int64(len(dst)), s.total-s.pos)
	want -= want % int64(s.channels)
	if want <= 0 {
		return 0
	}

	size := s.flags.SampleSize()
	need := int(want) * size
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	samples := n / size

	s.decode(dst[:samples], s.buf[:samples*size])
	s.pos += int64(samples)

	if err != nil {
		logger().Debug("audio: pcm read failed", "err", err, "pos", s.pos)
		s.failed = true
	}

	return samples
}

func (s *PCMStream) decode(dst []int16, src []byte) {
	unsigned := s.flags&FlagUnsigned != 0

	if s.flags&Flag16Bits == 0 {
		for i, b := range src {
			if unsigned {
				b ^= 0x80
			}
			dst[i] = int16(int8(b)) << 8
		}
		return
	}

	var order binary.ByteOrder = binary.BigEndian
	if s.flags&FlagLittleEndian != 0 {
		order = binary.LittleEndian
	}

	for i := range dst {
		v := order.Uint16(src[2*i:])
		if unsigned {
			v ^= 0x8000
		}
		dst[i] = int16(v)
	}
}

// Seek moves to where. Seeking past the end fails.
func (s *PCMStream) Seek(where Timestamp) bool {
	sample := int64(ConvertTimeToStreamPos(where, s.rate, s.channels).TotalNumberOfFrames())
	if sample < 0 || sample > s.total {
		return false
	}

	offset := s.dataStart + sample*int64(s.flags.SampleSize())
	if _, err := s.r.Seek(offset, io.SeekStart); err != nil {
		logger().Debug("audio: pcm seek failed", "err", err, "offset", offset)
		return false
	}

	s.pos = sample
	s.failed = false

	return true
}

func (s *PCMStream) Rewind() bool {
	return s.Seek(NewTimestamp(0, s.rate))
}

func (s *PCMStream) EndOfData() bool   { return s.failed || s.pos >= s.total }
func (s *PCMStream) EndOfStream() bool { return s.EndOfData() }

// Close closes the reader when the stream owns it.
func (s *PCMStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.dispose != DisposeYes {
		return nil
	}

	if c, ok := s.r.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("pcm: close reader: %w", err)
		}
	}

	return nil
}
