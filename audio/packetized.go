// SPDX-License-Identifier: EPL-2.0

package audio

// StatelessPacketizedStream decodes every packet on its own and plays the
// results back to back.
type StatelessPacketizedStream struct {
	stream *QueuingStream
	decode func(packet []byte) Stream
}

// NewStatelessPacketizedStream returns a packetized stream whose packets are
// turned into streams by decode. Every decoded stream must match rate and
// channels.
func NewStatelessPacketizedStream(rate, channels int, decode func(packet []byte) Stream) *StatelessPacketizedStream {
	return &StatelessPacketizedStream{
		stream: NewQueuingStream(rate, channels),
		decode: decode,
	}
}

// NewPacketizedPCMStream returns a packetized stream of raw PCM packets.
func NewPacketizedPCMStream(rate int, flags PCMFlags) *StatelessPacketizedStream {
	return NewStatelessPacketizedStream(rate, flags.Channels(), func(packet []byte) Stream {
		return NewPCMStream(packet, rate, flags)
	})
}

func (p *StatelessPacketizedStream) Channels() int { return p.stream.Channels() }
func (p *StatelessPacketizedStream) Rate() int     { return p.stream.Rate() }

func (p *StatelessPacketizedStream) ReadBuffer(dst []int16) int { return p.stream.ReadBuffer(dst) }
func (p *StatelessPacketizedStream) EndOfData() bool            { return p.stream.EndOfData() }
func (p *StatelessPacketizedStream) EndOfStream() bool          { return p.stream.EndOfStream() }
func (p *StatelessPacketizedStream) Close() error               { return p.stream.Close() }

// QueuePacket decodes data and queues the result. It panics with
// ErrQueueFinished after Finish.
func (p *StatelessPacketizedStream) QueuePacket(data []byte) {
	p.stream.QueueStream(p.decode(data), DisposeYes)
}

func (p *StatelessPacketizedStream) Finish() { p.stream.Finish() }
