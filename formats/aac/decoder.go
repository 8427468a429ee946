// SPDX-License-Identifier: EPL-2.0

package aac

import (
	"encoding/binary"
	"fmt"

	goaac "github.com/llehouerou/go-aac"

	"github.com/ik5/audstream/audio"
)

// aacDecoder is the part of the go-aac decoder used after initialization.
type aacDecoder interface {
	DecodeInt16(frame []byte) ([]int16, error)
	Close()
}

// stream plays decoded access units back to back. Every packet becomes a
// finished sub-queue of PCM buffers inside the packetized stream.
type stream struct {
	*audio.StatelessPacketizedStream

	dec      aacDecoder
	rate     int
	channels int
	flags    audio.PCMFlags
}

// NewStream returns a packetized stream for raw AAC access units, as stored
// in MP4/M4A files. extraData is the AudioSpecificConfig of the track.
// Each queued packet must hold exactly one access unit.
func NewStream(extraData []byte) (audio.PacketizedStream, error) {
	dec := goaac.NewDecoder()

	rate, channels, err := dec.SimpleInit2(extraData)
	if err != nil {
		dec.Close()
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	s, err := newStream(dec, int(rate), int(channels))
	if err != nil {
		dec.Close()
		return nil, err
	}

	return s, nil
}

func newStream(dec aacDecoder, rate, channels int) (*stream, error) {
	if channels < 1 || channels > 2 {
		return nil, fmt.Errorf("%w: channel configuration %d", ErrUnsupportedChannels, channels)
	}

	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d Hz", ErrInvalidConfig, rate)
	}

	s := &stream{
		dec:      dec,
		rate:     rate,
		channels: channels,
		flags:    audio.Flag16Bits | audio.FlagNativeEndian,
	}
	if channels == 2 {
		s.flags |= audio.FlagStereo
	}

	s.StatelessPacketizedStream = audio.NewStatelessPacketizedStream(rate, channels, s.decodePacket)

	return s, nil
}

// decodePacket decodes one access unit. A packet that fails to decode
// yields an empty stream so playback continues with the next one.
func (s *stream) decodePacket(packet []byte) audio.Stream {
	sub := audio.NewQueuingStream(s.rate, s.channels)
	defer sub.Finish()

	samples, err := s.dec.DecodeInt16(packet)
	if err != nil {
		audio.Logger().Warn("aac: decoding packet failed", "size", len(packet), "err", err)
		return sub
	}

	// Priming units decode to no samples.
	samples = samples[:len(samples)-len(samples)%s.channels]
	if len(samples) == 0 {
		return sub
	}

	buf := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.NativeEndian.PutUint16(buf[2*i:], uint16(v))
	}
	sub.QueueBuffer(buf, s.flags)

	return sub
}

// Close releases the queued audio and the decoder.
func (s *stream) Close() error {
	err := s.StatelessPacketizedStream.Close()
	if s.dec != nil {
		s.dec.Close()
		s.dec = nil
	}
	return err
}
