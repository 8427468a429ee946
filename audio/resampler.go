// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/audstream/utils"
)

// Resampler converts src to another sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// Includes basic anti-aliasing filtering when downsampling.
//
// The Resampler never blocks: when src has no data right now it returns
// what it could produce and resumes on the next read.
type Resampler struct {
	src      owned[Stream]
	dstRate  int
	ratio    float64 // srcRate / dstRate - how many source frames per output frame
	channels int

	// Window of 4 frames for cubic interpolation
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames [4][]float32

	// have counts valid frames starting at frames[1].
	have int

	// started is set once frames[0] holds a real frame.
	started bool

	// Position between frames[1] and frames[2] (in source frames)
	pos float64

	in     []int16
	srcEOF bool

	// Simple low-pass filter state for anti-aliasing (when downsampling)
	filterState []float32
	useFilter   bool
	filterAlpha float32
	primed      bool
}

// NewResampler returns a stream producing src at dstRate.
func NewResampler(src Stream, dstRate int, dispose DisposeAfterUse) *Resampler {
	if dstRate <= 0 {
		panic(ErrInvalidFramerate)
	}

	channels := src.Channels()
	ratio := float64(src.Rate()) / float64(dstRate)

	// One-pole low-pass with the cutoff near the destination Nyquist
	// frequency. A proper FIR filter would do better.
	useFilter := ratio > 1.0
	var filterAlpha float32
	if useFilter {
		filterAlpha = 0.5
	}

	r := &Resampler{
		src:         own(src, dispose),
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		in:          make([]int16, channels),
		useFilter:   useFilter,
		filterAlpha: filterAlpha,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) Rate() int     { return r.dstRate }
func (r *Resampler) Channels() int { return r.channels }
func (r *Resampler) Close() error  { return r.src.Close() }

func (r *Resampler) passthrough() bool { return r.ratio == 1 }

// fill reads source frames into the window until it is full, the source
// has no data right now, or the source ended.
func (r *Resampler) fill() {
	for r.have < 3 && !r.srcEOF {
		n := r.src.stream.ReadBuffer(r.in)
		if n < r.channels {
			if r.src.stream.EndOfStream() {
				r.srcEOF = true
			}
			return
		}

		f := r.frames[1+r.have]
		for c, v := range r.in {
			f[c] = utils.Int16ToFloat32(v)
		}

		if r.useFilter {
			if !r.primed {
				// Initialize filter state with first frame to avoid warm-up transients
				copy(r.filterState, f)
				r.primed = true
			}
			for c := range f {
				// y[n] = alpha * x[n] + (1-alpha) * y[n-1]
				f[c] = r.filterAlpha*f[c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = f[c]
			}
		}

		r.have++
	}
}

// shift drops frames[0] and moves the window one frame forward.
func (r *Resampler) shift() {
	first := r.frames[0]
	copy(r.frames[:], r.frames[1:])
	r.frames[3] = first
	r.have--
	r.started = true
}

// ReadBuffer produces interleaved samples at the destination rate. Only
// whole frames are written.
func (r *Resampler) ReadBuffer(dst []int16) int {
	if r.passthrough() {
		return r.src.stream.ReadBuffer(dst)
	}

	framesNeeded := len(dst) / r.channels
	written := 0

	for written < framesNeeded {
		// pos should be in range [0, 1) for interpolation between frames[1] and frames[2]
		for r.pos >= 1.0 {
			if r.have < 2 {
				r.fill()
			}
			if r.have < 2 {
				if r.srcEOF {
					r.have = 0
				}
				return written * r.channels
			}
			r.shift()
			r.pos -= 1.0
		}

		r.fill()

		ready := r.have == 3 || (r.srcEOF && r.have > 0)
		if !ready {
			break
		}

		alpha := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]

		for c := range out {
			y1 := r.frames[1][c]

			// Duplicate edge frames where the window is short
			y0 := y1
			if r.started {
				y0 = r.frames[0][c]
			}

			y2 := y1
			if r.have >= 2 {
				y2 = r.frames[2][c]
			}

			y3 := y2
			if r.have >= 3 {
				y3 = r.frames[3][c]
			}

			out[c] = utils.Float32ToInt16(utils.CubicInterpolate(y0, y1, y2, y3, alpha))
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels
}

func (r *Resampler) EndOfStream() bool {
	if r.passthrough() {
		return r.src.stream.EndOfStream()
	}

	return r.srcEOF && (r.have == 0 || (r.have == 1 && r.pos >= 1.0))
}

func (r *Resampler) EndOfData() bool {
	if r.passthrough() {
		return r.src.stream.EndOfData()
	}

	return r.EndOfStream() || (!r.srcEOF && r.have < 3 && r.src.stream.EndOfData())
}
