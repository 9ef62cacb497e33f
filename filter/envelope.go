// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"

	"github.com/ik5/wavesynth/audio"
)

// Envelope describes an ADSR amplitude shape. Durations are in seconds.
type Envelope struct {
	Attack  float64
	Decay   float64
	Sustain float64
	// SustainLevel is the gain held during Sustain, in [0,1].
	SustainLevel float64
	Release      float64
	// StopAtEnd ends the stream after Release instead of emitting silence.
	StopAtEnd bool
	// Cycle restarts the Attack after every Release.
	Cycle bool
}

// Length returns the total duration of one pass in seconds.
func (e Envelope) Length() float64 {
	return e.Attack + e.Decay + e.Sustain + e.Release
}

func (e Envelope) validate() error {
	for _, d := range []struct {
		name string
		v    float64
	}{
		{"attack", e.Attack},
		{"decay", e.Decay},
		{"sustain", e.Sustain},
		{"release", e.Release},
	} {
		if d.v < 0 {
			return fmt.Errorf("%w: envelope %s %v is negative", audio.ErrInvalidParameter, d.name, d.v)
		}
	}

	if e.SustainLevel < 0 || e.SustainLevel > 1 {
		return fmt.Errorf("%w: sustain level %v outside [0,1]", audio.ErrInvalidParameter, e.SustainLevel)
	}
	if e.Cycle && e.Length() == 0 {
		return fmt.Errorf("%w: cycling envelope needs a non-zero length", audio.ErrInvalidParameter)
	}

	return nil
}

// EnvelopeFilter multiplies its source by an Envelope.
type EnvelopeFilter struct {
	src  audio.Producer
	env  Envelope
	rate float64

	// segment ends, in seconds from the start of a pass
	decayAt   float64
	sustainAt float64
	releaseAt float64
	end       float64

	n        int
	finished bool
	drained  bool
}

// NewEnvelope shapes src with env.
func NewEnvelope(src audio.Producer, env Envelope, sampleRate int) (*EnvelopeFilter, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d must be positive", audio.ErrInvalidParameter, sampleRate)
	}

	decayAt := env.Attack
	sustainAt := decayAt + env.Decay
	releaseAt := sustainAt + env.Sustain

	return &EnvelopeFilter{
		src:       src,
		env:       env,
		rate:      float64(sampleRate),
		decayAt:   decayAt,
		sustainAt: sustainAt,
		releaseAt: releaseAt,
		end:       releaseAt + env.Release,
	}, nil
}

// gain returns the envelope level at time t within a pass.
func (f *EnvelopeFilter) gain(t float64) float64 {
	var g float64
	switch {
	case t < f.decayAt:
		g = t / f.env.Attack
	case t < f.sustainAt:
		g = 1 + (f.env.SustainLevel-1)*(t-f.decayAt)/f.env.Decay
	case t < f.releaseAt:
		g = f.env.SustainLevel
	default:
		g = f.env.SustainLevel * (1 - (t-f.releaseAt)/f.env.Release)
	}
	return max(g, 0)
}

func (f *EnvelopeFilter) Next() (float64, bool) {
	if f.drained {
		return 0, false
	}
	if f.finished {
		return 0, !f.env.StopAtEnd
	}

	t := float64(f.n) / f.rate
	if t >= f.end {
		if !f.env.Cycle {
			f.finished = true
			return 0, !f.env.StopAtEnd
		}
		f.n, t = 0, 0
	}

	v, ok := f.src.Next()
	if !ok {
		f.drained = true
		return 0, false
	}
	f.n++

	return v * f.gain(t), true
}

// Done reports whether the envelope has passed its Release.
func (f *EnvelopeFilter) Done() bool { return f.finished }
