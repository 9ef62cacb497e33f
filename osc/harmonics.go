// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"math"

	"github.com/ik5/wavesynth/audio"
)

// Harmonic is one partial of an additive waveform: a sine at Number times
// the fundamental, weighted by Amplitude.
type Harmonic struct {
	Number    int
	Amplitude float64
}

// OddHarmonics returns the first n odd harmonics 1,3,5... weighted 1/k,
// the series of a square wave.
func OddHarmonics(n int) []Harmonic {
	hs := make([]Harmonic, 0, max(n, 0))
	for k := 1; k < 2*n; k += 2 {
		hs = append(hs, Harmonic{Number: k, Amplitude: 1 / float64(k)})
	}
	return hs
}

// AllHarmonics returns harmonics 1..n weighted 1/k, the series of a
// sawtooth wave.
func AllHarmonics(n int) []Harmonic {
	hs := make([]Harmonic, 0, max(n, 0))
	for k := 1; k <= n; k++ {
		hs = append(hs, Harmonic{Number: k, Amplitude: 1 / float64(k)})
	}
	return hs
}

// Harmonics sums sine partials of the fundamental (additive synthesis).
// Partials above the Nyquist frequency are dropped when the oscillator is
// built.
type Harmonics struct {
	phasor
	amplitude float64
	bias      float64
	partials  []Harmonic
	mirror    bool
}

// NewHarmonics creates an additive oscillator over harmonics.
// The slice is copied.
func NewHarmonics(p Params, harmonics []Harmonic, fm audio.Producer) *Harmonics {
	nyquist := p.Nyquist()
	partials := make([]Harmonic, 0, len(harmonics))
	for _, h := range harmonics {
		if float64(h.Number)*p.Frequency <= nyquist {
			partials = append(partials, h)
		}
	}

	inc, off := angular(p)
	return &Harmonics{
		phasor:    newPhasor(p.Frequency, off, inc, fm),
		amplitude: p.Amplitude,
		bias:      p.Bias,
		partials:  partials,
	}
}

// NewSquareH builds a square wave from its first n odd harmonics.
func NewSquareH(p Params, n int, fm audio.Producer) *Harmonics {
	return NewHarmonics(p, OddHarmonics(n), fm)
}

// NewSawtoothH builds a sawtooth from its first n harmonics. The sum is
// started half a period late and mirrored around Bias (2*Bias - v), which
// turns the falling series into a rising ramp.
func NewSawtoothH(p Params, n int, fm audio.Producer) *Harmonics {
	p.Phase += 0.5
	h := NewHarmonics(p, AllHarmonics(n), fm)
	h.mirror = true
	return h
}

// Partials returns the harmonics that survived the Nyquist filter.
func (s *Harmonics) Partials() []Harmonic { return s.partials }

func (s *Harmonics) Next() (float64, bool) {
	q, ok := s.advance()
	if !ok {
		return 0, false
	}

	var h float64
	for _, p := range s.partials {
		h += math.Sin(q*float64(p.Number)) * p.Amplitude
	}

	v := h*s.amplitude + s.bias
	if s.mirror {
		v = s.bias*2 - v
	}

	return v, true
}
