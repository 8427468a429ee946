// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/utils"
)

// flacReader is the part of flac.Stream the stream needs, so tests can
// replace it. Seek positions the reader at the start of the frame holding
// sampleNum and returns that frame's first sample number.
type flacReader interface {
	ParseNext() (*frame.Frame, error)
	Seek(sampleNum uint64) (uint64, error)
}

// stream decodes one FLAC frame at a time and keeps what the caller did
// not consume yet.
type stream struct {
	dec      flacReader
	rate     int
	channels int
	bitDepth int

	// total is the length in frames, 0 when the stream info leaves it out.
	total int64

	pending []int16
	off     int
	done    bool
}

func newStream(dec flacReader, rate, channels, bitDepth int, total int64) *stream {
	return &stream{
		dec:      dec,
		rate:     rate,
		channels: channels,
		bitDepth: bitDepth,
		total:    total,
	}
}

func (s *stream) Rate() int         { return s.rate }
func (s *stream) Channels() int     { return s.channels }
func (s *stream) EndOfData() bool   { return s.done && s.off == len(s.pending) }
func (s *stream) EndOfStream() bool { return s.EndOfData() }
func (s *stream) Close() error      { return nil }

func (s *stream) Length() audio.Timestamp {
	return audio.NewTimestampFrames(0, int(s.total), s.rate)
}

func (s *stream) ReadBuffer(dst []int16) int {
	want := len(dst) - len(dst)%s.channels

	got := 0
	for got < want {
		if s.off == len(s.pending) {
			if s.done || !s.nextFrame() {
				break
			}
			continue
		}

		n := copy(dst[got:want], s.pending[s.off:])
		got += n
		s.off += n
	}

	return got
}

func (s *stream) nextFrame() bool {
	f, err := s.dec.ParseNext()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			audio.Logger().Debug("flac: decode failed", "err", err)
		}
		s.done = true
		return false
	}

	if err := s.fill(f, 0); err != nil {
		audio.Logger().Debug("flac: bad frame", "err", err)
		s.done = true
		return false
	}

	return true
}

// fill interleaves the subframes of f into pending, dropping the first
// skip samples of every channel.
func (s *stream) fill(f *frame.Frame, skip int) error {
	if len(f.Subframes) < s.channels {
		return fmt.Errorf("%w: %d subframes for %d channels", ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	n := len(f.Subframes[0].Samples)
	for _, sub := range f.Subframes[1:s.channels] {
		n = min(n, len(sub.Samples))
	}

	s.pending = s.pending[:0]
	s.off = 0

	for i := skip; i < n; i++ {
		for _, sub := range f.Subframes[:s.channels] {
			s.pending = append(s.pending, s.scale(sub.Samples[i]))
		}
	}

	return nil
}

// scale narrows a signed sample of bitDepth bits to 16 bits.
func (s *stream) scale(v int32) int16 {
	if s.bitDepth == 8 {
		return int16(v) << 8
	}
	return utils.ScaleToInt16(int(v), s.bitDepth)
}

// Seek moves to where. Positions past the end fail.
func (s *stream) Seek(where audio.Timestamp) bool {
	target := int64(audio.ConvertTimeToStreamPos(where, s.rate, 1).TotalNumberOfFrames())
	if target < 0 || (s.total > 0 && target > s.total) {
		return false
	}

	if s.total > 0 && target == s.total {
		s.pending = s.pending[:0]
		s.off = 0
		s.done = true
		return true
	}

	start, err := s.dec.Seek(uint64(target))
	if err != nil {
		audio.Logger().Debug("flac: seek failed", "err", err, "frame", target)
		return false
	}

	f, err := s.dec.ParseNext()
	if err != nil {
		audio.Logger().Debug("flac: decode after seek failed", "err", err, "frame", target)
		return false
	}

	if err := s.fill(f, int(target-int64(start))); err != nil {
		audio.Logger().Debug("flac: bad frame", "err", err)
		return false
	}

	s.done = false

	return true
}

func (s *stream) Rewind() bool {
	return s.Seek(audio.NewTimestamp(0, s.rate))
}

// Decoder decodes FLAC files with github.com/mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.SeekableStream, error) {
	rs, err := utils.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("flac: %w", err)
	}

	st, err := flac.NewSeek(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFLACFile, err)
	}

	info := st.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		return nil, ErrNotFLACFile
	}

	return newStream(st, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample), int64(info.NSamples)), nil
}
