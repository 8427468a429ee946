// SPDX-License-Identifier: EPL-2.0

package audio

// MonoMixer folds a multi-channel stream into mono by averaging the
// channels of every frame. A source read that ends inside a frame is
// completed by the next read.
type MonoMixer struct {
	src owned[Stream]
	tmp []int16

	// carry holds the samples of a partial frame, fewer than one frame.
	carry []int16
}

func NewMonoMixer(src Stream, dispose DisposeAfterUse) *MonoMixer {
	return &MonoMixer{
		src: own(src, dispose),
		tmp: make([]int16, 4096),
	}
}

func (m *MonoMixer) Rate() int         { return m.src.stream.Rate() }
func (m *MonoMixer) Channels() int     { return 1 }
func (m *MonoMixer) EndOfData() bool   { return m.src.stream.EndOfData() }
func (m *MonoMixer) EndOfStream() bool { return m.src.stream.EndOfStream() }
func (m *MonoMixer) Close() error      { return m.src.Close() }

func (m *MonoMixer) ReadBuffer(dst []int16) int {
	if len(dst) == 0 {
		return 0
	}

	channels := m.src.stream.Channels()
	if channels == 1 {
		// Pass-through: read mono directly
		return m.src.stream.ReadBuffer(dst)
	}

	samplesNeeded := len(dst) * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]int16, max(samplesNeeded, 8192))
	}
	m.tmp = m.tmp[:samplesNeeded]

	held := copy(m.tmp, m.carry)
	n := held + m.src.stream.ReadBuffer(m.tmp[held:])
	frames := n / channels

	m.carry = append(m.carry[:0], m.tmp[frames*channels:n]...)

	switch channels {
	case 2: // Stereo (most common)
		for f := range frames {
			idx := f << 1 // f * 2
			dst[f] = int16((int32(m.tmp[idx]) + int32(m.tmp[idx+1])) / 2)
		}
	default:
		for f := range frames {
			var sum int32
			base := f * channels
			for c := range channels {
				sum += int32(m.tmp[base+c])
			}
			dst[f] = int16(sum / int32(channels))
		}
	}

	return frames
}
