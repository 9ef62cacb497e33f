// SPDX-License-Identifier: EPL-2.0

package osc

import "github.com/ik5/wavesynth/audio"

// Sine is a sine oscillator with optional frequency modulation.
type Sine struct {
	phasor
	amplitude float64
	bias      float64
}

// NewSine creates a sine oscillator. fm may be nil; when set, every sample
// runs at Frequency*(1+fm).
func NewSine(p Params, fm audio.Producer) *Sine {
	inc, off := angular(p)
	return &Sine{
		phasor:    newPhasor(p.Frequency, off, inc, fm),
		amplitude: p.Amplitude,
		bias:      p.Bias,
	}
}

func (s *Sine) Next() (float64, bool) {
	x, ok := s.advance()
	if !ok {
		return 0, false
	}
	return sineAt(x, s.amplitude, s.bias), true
}

// Triangle is a perfect (non band-limited) triangle oscillator.
type Triangle struct {
	phasor
	amplitude float64
	bias      float64
}

func NewTriangle(p Params, fm audio.Producer) *Triangle {
	inc, off := linear(p)
	return &Triangle{
		phasor:    newPhasor(p.Frequency, off, inc, fm),
		amplitude: p.Amplitude,
		bias:      p.Bias,
	}
}

func (s *Triangle) Next() (float64, bool) {
	x, ok := s.advance()
	if !ok {
		return 0, false
	}
	return triangleAt(x, s.amplitude, s.bias), true
}

// Square flips between +Amplitude and -Amplitude every half period.
type Square struct {
	phasor
	amplitude float64
	bias      float64
}

func NewSquare(p Params, fm audio.Producer) *Square {
	inc, off := linear(p)
	return &Square{
		phasor:    newPhasor(p.Frequency, off, inc, fm),
		amplitude: p.Amplitude,
		bias:      p.Bias,
	}
}

func (s *Square) Next() (float64, bool) {
	x, ok := s.advance()
	if !ok {
		return 0, false
	}
	return squareAt(x, s.amplitude, s.bias), true
}

// Sawtooth ramps from -Amplitude to +Amplitude once per period.
type Sawtooth struct {
	phasor
	amplitude float64
	bias      float64
}

func NewSawtooth(p Params, fm audio.Producer) *Sawtooth {
	inc, off := linear(p)
	return &Sawtooth{
		phasor:    newPhasor(p.Frequency, off, inc, fm),
		amplitude: p.Amplitude,
		bias:      p.Bias,
	}
}

func (s *Sawtooth) Next() (float64, bool) {
	x, ok := s.advance()
	if !ok {
		return 0, false
	}
	return sawtoothAt(x, s.amplitude, s.bias), true
}
