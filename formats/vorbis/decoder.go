// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/utils"
)

// oggReader is the part of oggvorbis.Reader the stream needs, so tests can
// replace it. Read returns the number of interleaved values decoded;
// positions and lengths are counted in frames.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
	SetPosition(pos int64) error
	Length() int64
}

// stream decodes Vorbis packets while it is read.
type stream struct {
	dec      oggReader
	rate     int
	channels int
	buf      []float32
	done     bool
}

func newStream(dec oggReader) *stream {
	return &stream{
		dec:      dec,
		rate:     dec.SampleRate(),
		channels: dec.Channels(),
	}
}

func (s *stream) Rate() int         { return s.rate }
func (s *stream) Channels() int     { return s.channels }
func (s *stream) EndOfData() bool   { return s.done }
func (s *stream) EndOfStream() bool { return s.done }
func (s *stream) Close() error      { return nil }

func (s *stream) Length() audio.Timestamp {
	return audio.NewTimestampFrames(0, int(max(s.dec.Length(), 0)), s.rate)
}

func (s *stream) ReadBuffer(dst []int16) int {
	if s.done {
		return 0
	}

	want := len(dst) - len(dst)%s.channels
	if cap(s.buf) < want {
		s.buf = make([]float32, want)
	}
	s.buf = s.buf[:want]

	got := 0
	for got < want {
		n, err := s.dec.Read(s.buf[got:])
		got += n

		if err != nil {
			if !errors.Is(err, io.EOF) {
				audio.Logger().Debug("vorbis: decode failed", "err", err)
			}
			s.done = true
			break
		}

		if n == 0 {
			break
		}
	}

	for i, v := range s.buf[:got] {
		dst[i] = utils.Float32ToInt16(v)
	}

	return got
}

// Seek moves to where. Positions past the end fail.
func (s *stream) Seek(where audio.Timestamp) bool {
	frame := int64(audio.ConvertTimeToStreamPos(where, s.rate, 1).TotalNumberOfFrames())
	if frame < 0 || frame > s.dec.Length() {
		return false
	}

	if err := s.dec.SetPosition(frame); err != nil {
		audio.Logger().Debug("vorbis: seek failed", "err", err, "frame", frame)
		return false
	}

	s.done = false

	return true
}

func (s *stream) Rewind() bool {
	return s.Seek(audio.NewTimestamp(0, s.rate))
}

// Decoder decodes Ogg Vorbis files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.SeekableStream, error) {
	rs, err := utils.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}

	dec, err := oggvorbis.NewReader(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return newStream(dec), nil
}
