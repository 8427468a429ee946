// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Timestamp is an exact point in time expressed as whole seconds plus a
// number of frames at a given framerate.
//
// Internally the framerate is scaled by 1000/gcd(1000, fr) so a value built
// from milliseconds is always represented without loss. The zero value is
// time zero at a framerate of 1.
type Timestamp struct {
	secs int

	// numFrames is in the range [0, framerate) after normalization and is
	// counted at the scaled framerate.
	numFrames int

	// framerate is the scaled framerate, always divisible by 1000.
	framerate int

	framerateFactor int
}

// NewTimestamp returns a timestamp for ms milliseconds at framerate fr.
func NewTimestamp(ms, fr int) Timestamp {
	if fr <= 0 {
		panic(ErrInvalidFramerate)
	}

	factor := 1000 / gcd(1000, fr)
	t := Timestamp{
		secs:            ms / 1000,
		framerateFactor: factor,
		framerate:       fr * factor,
	}
	t.numFrames = (ms % 1000) * (t.framerate / 1000)
	t.normalize()

	return t
}

// NewTimestampFrames returns a timestamp for secs seconds plus frames frames
// at framerate fr.
func NewTimestampFrames(secs, frames, fr int) Timestamp {
	if fr <= 0 {
		panic(ErrInvalidFramerate)
	}

	factor := 1000 / gcd(1000, fr)
	t := Timestamp{
		secs:            secs + frames/fr,
		framerateFactor: factor,
		framerate:       fr * factor,
		numFrames:       (frames % fr) * factor,
	}
	t.normalize()

	return t
}

// NewTimestampDuration returns a timestamp for d, truncated to milliseconds,
// at framerate fr.
func NewTimestampDuration(d time.Duration, fr int) Timestamp {
	return NewTimestamp(int(d.Milliseconds()), fr)
}

// ConvertToFramerate returns the same point in time at a new framerate.
// The frame offset is rounded to the nearest frame of the scaled framerate.
func (t Timestamp) ConvertToFramerate(fr int) Timestamp {
	if fr <= 0 {
		panic(ErrInvalidFramerate)
	}
	t = t.norm()
	if t.Framerate() == fr {
		return t
	}

	ts := t
	ts.framerateFactor = 1000 / gcd(1000, fr)
	ts.framerate = fr * ts.framerateFactor

	g := gcd(t.framerate, ts.framerate)
	p := t.framerate / g
	q := ts.framerate / g

	ts.numFrames = (t.numFrames*q + p/2) / p
	ts.normalize()

	return ts
}

// norm turns the zero value into a usable timestamp.
func (t Timestamp) norm() Timestamp {
	if t.framerate == 0 {
		return NewTimestampFrames(t.secs, 0, 1)
	}
	return t
}

func (t *Timestamp) normalize() {
	if t.numFrames < 0 {
		secsub := 1 + (-t.numFrames / t.framerate)
		t.numFrames += t.framerate * secsub
		t.secs -= secsub
	}

	t.secs += t.numFrames / t.framerate
	t.numFrames %= t.framerate
}

// Secs returns the whole seconds part.
func (t Timestamp) Secs() int { return t.secs }

// NumberOfFrames returns the frames past the last full second at the
// public framerate.
func (t Timestamp) NumberOfFrames() int {
	t = t.norm()
	return t.numFrames / t.framerateFactor
}

// TotalNumberOfFrames returns the timestamp as a frame count at the public
// framerate.
func (t Timestamp) TotalNumberOfFrames() int {
	t = t.norm()
	return t.numFrames/t.framerateFactor + t.secs*(t.framerate/t.framerateFactor)
}

// Framerate returns the public framerate.
func (t Timestamp) Framerate() int {
	t = t.norm()
	return t.framerate / t.framerateFactor
}

// Msecs returns the timestamp in milliseconds, rounded down.
func (t Timestamp) Msecs() int {
	t = t.norm()
	return t.secs*1000 + t.numFrames/(t.framerate/1000)
}

// Duration returns the timestamp as a time.Duration.
func (t Timestamp) Duration() time.Duration {
	t = t.norm()
	return time.Duration(t.secs)*time.Second +
		time.Duration(t.numFrames)*time.Second/time.Duration(t.framerate)
}

// AddFrames returns t moved by frames frames at the public framerate.
func (t Timestamp) AddFrames(frames int) Timestamp {
	ts := t.norm()
	ts.numFrames += frames * ts.framerateFactor
	ts.normalize()
	return ts
}

// AddMsecs returns t moved by ms milliseconds.
func (t Timestamp) AddMsecs(ms int) Timestamp {
	ts := t.norm()
	ts.secs += ms / 1000
	ts.numFrames += (ms % 1000) * (ts.framerate / 1000)
	ts.normalize()
	return ts
}

// Neg returns -t.
func (t Timestamp) Neg() Timestamp {
	ts := t.norm()
	ts.secs = -ts.secs
	ts.numFrames = -ts.numFrames
	ts.normalize()
	return ts
}

// Add returns t+o at the framerate of t.
func (t Timestamp) Add(o Timestamp) Timestamp {
	t = t.norm()
	o = o.ConvertToFramerate(t.Framerate())

	ts := t
	ts.secs += o.secs
	ts.numFrames += o.numFrames
	ts.normalize()
	return ts
}

// Sub returns t-o at the framerate of t.
func (t Timestamp) Sub(o Timestamp) Timestamp {
	return t.Add(o.Neg())
}

// FrameDiff returns t-o as a number of frames at the public framerate of t.
func (t Timestamp) FrameDiff(o Timestamp) int {
	t, o = t.norm(), o.norm()

	delta := 0
	if t.secs != o.secs {
		delta = (t.secs - o.secs) * t.framerate
	}

	delta += t.numFrames

	if t.framerate == o.framerate {
		delta -= o.numFrames
	} else {
		g := gcd(t.framerate, o.framerate)
		p := t.framerate / g
		q := o.framerate / g
		delta -= (o.numFrames*p + q/2) / q
	}

	return delta / t.framerateFactor
}

// Cmp compares two timestamps and returns -1, 0 or +1.
func (t Timestamp) Cmp(o Timestamp) int {
	t, o = t.norm(), o.norm()

	delta := t.secs - o.secs
	if delta == 0 {
		g := gcd(t.framerate, o.framerate)
		p := t.framerate / g
		q := o.framerate / g
		delta = t.numFrames*q - o.numFrames*p
	}

	switch {
	case delta < 0:
		return -1
	case delta > 0:
		return 1
	default:
		return 0
	}
}

func (t Timestamp) Equal(o Timestamp) bool { return t.Cmp(o) == 0 }
func (t Timestamp) Less(o Timestamp) bool  { return t.Cmp(o) < 0 }

// IsZero reports whether t is at time zero.
func (t Timestamp) IsZero() bool { return t.secs == 0 && t.numFrames == 0 }

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
