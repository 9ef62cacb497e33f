// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"math"

	"github.com/ik5/wavesynth/audio"
)

// Params holds the settings shared by every periodic oscillator.
type Params struct {
	// Frequency in Hz.
	Frequency float64
	// Amplitude is the peak deviation from Bias.
	Amplitude float64
	// Phase offset in periods (0.5 is half a period).
	Phase float64
	// Bias is added to every sample.
	Bias float64
	// SampleRate in Hz.
	SampleRate int
}

// Nyquist returns half the sample rate.
func (p Params) Nyquist() float64 { return float64(p.SampleRate) / 2 }

// phasor tracks the argument of a waveform whose frequency may change on
// every sample. When the frequency moves from f0 to f1 at time t, the
// accumulated correction absorbs (f0-f1)*t so t*f + correction stays
// continuous.
type phasor struct {
	fm         audio.Producer
	base       float64
	previous   float64
	correction float64
	t          float64
	increment  float64
}

func newPhasor(freq, offset, increment float64, fm audio.Producer) phasor {
	return phasor{
		fm:         fm,
		base:       freq,
		previous:   freq,
		correction: offset,
		increment:  increment,
	}
}

func (p *phasor) advance() (float64, bool) {
	var m float64
	if p.fm != nil {
		v, ok := p.fm.Next()
		if !ok {
			return 0, false
		}
		m = v
	}

	freq := p.base * (1 + m)
	p.correction += (p.previous - freq) * p.t
	p.previous = freq

	x := p.t*freq + p.correction
	p.t += p.increment

	return x, true
}

// clock is the phasor of the fixed-frequency tier: no modulation input and
// no correction bookkeeping, same arithmetic otherwise.
type clock struct {
	freq      float64
	offset    float64
	t         float64
	increment float64
}

func newClock(freq, offset, increment float64) clock {
	return clock{freq: freq, offset: offset, increment: increment}
}

func (c *clock) advance() float64 {
	x := c.t*c.freq + c.offset
	c.t += c.increment
	return x
}

// angular returns the time step and phase offset for waveforms that take
// their argument in radians.
func angular(p Params) (increment, offset float64) {
	return 2 * math.Pi / float64(p.SampleRate), p.Phase * 2 * math.Pi
}

// linear returns the time step and phase offset for waveforms that take
// their argument in periods.
func linear(p Params) (increment, offset float64) {
	return 1 / float64(p.SampleRate), p.Phase
}

func frac(x float64) float64 { return x - math.Floor(x) }

func sineAt(x, amplitude, bias float64) float64 {
	return math.Sin(x)*amplitude + bias
}

func triangleAt(x, amplitude, bias float64) float64 {
	return 4*amplitude*(math.Abs(frac(x+0.75)-0.5)-0.25) + bias
}

func squareAt(x, amplitude, bias float64) float64 {
	if math.Mod(math.Floor(2*x), 2) != 0 {
		return -amplitude + bias
	}
	return amplitude + bias
}

func sawtoothAt(x, amplitude, bias float64) float64 {
	return bias + 2*amplitude*(x-math.Floor(0.5+x))
}

func pulseAt(x, width, amplitude, bias float64) float64 {
	if frac(x) < width {
		return amplitude + bias
	}
	return -amplitude + bias
}

// clampWidth keeps a duty cycle strictly inside (0,1).
func clampWidth(w float64) float64 {
	const eps = 0x1p-52
	switch {
	case w <= 0:
		return eps
	case w >= 1:
		return 1 - eps
	}
	return w
}
