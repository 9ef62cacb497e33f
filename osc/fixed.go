// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"fmt"

	"github.com/ik5/wavesynth/audio"
)

// The fixed tier below produces the same samples as the continuous
// oscillators without FM, skipping the modulator read and the correction
// bookkeeping.

// FixedSine is a sine at a constant frequency.
type FixedSine struct {
	clock
	amplitude float64
	bias      float64
}

func NewFixedSine(p Params) *FixedSine {
	inc, off := angular(p)
	return &FixedSine{clock: newClock(p.Frequency, off, inc), amplitude: p.Amplitude, bias: p.Bias}
}

func (s *FixedSine) Next() (float64, bool) {
	return sineAt(s.advance(), s.amplitude, s.bias), true
}

// FixedTriangle is a triangle at a constant frequency.
type FixedTriangle struct {
	clock
	amplitude float64
	bias      float64
}

func NewFixedTriangle(p Params) *FixedTriangle {
	inc, off := linear(p)
	return &FixedTriangle{clock: newClock(p.Frequency, off, inc), amplitude: p.Amplitude, bias: p.Bias}
}

func (s *FixedTriangle) Next() (float64, bool) {
	return triangleAt(s.advance(), s.amplitude, s.bias), true
}

// FixedSquare is a square wave at a constant frequency.
type FixedSquare struct {
	clock
	amplitude float64
	bias      float64
}

func NewFixedSquare(p Params) *FixedSquare {
	inc, off := linear(p)
	return &FixedSquare{clock: newClock(p.Frequency, off, inc), amplitude: p.Amplitude, bias: p.Bias}
}

func (s *FixedSquare) Next() (float64, bool) {
	return squareAt(s.advance(), s.amplitude, s.bias), true
}

// FixedSawtooth is a sawtooth at a constant frequency.
type FixedSawtooth struct {
	clock
	amplitude float64
	bias      float64
}

func NewFixedSawtooth(p Params) *FixedSawtooth {
	inc, off := linear(p)
	return &FixedSawtooth{clock: newClock(p.Frequency, off, inc), amplitude: p.Amplitude, bias: p.Bias}
}

func (s *FixedSawtooth) Next() (float64, bool) {
	return sawtoothAt(s.advance(), s.amplitude, s.bias), true
}

// FixedPulse is a pulse wave at a constant frequency. PWM is still
// honoured; it ends when pwm ends.
type FixedPulse struct {
	clock
	amplitude float64
	bias      float64
	width     float64
	pwm       audio.Producer
}

func NewFixedPulse(p Params, width float64, pwm audio.Producer) (*FixedPulse, error) {
	if err := checkWidth(width); err != nil {
		return nil, fmt.Errorf("fixed pulse: %w", err)
	}

	inc, off := linear(p)
	return &FixedPulse{
		clock:     newClock(p.Frequency, off, inc),
		amplitude: p.Amplitude,
		bias:      p.Bias,
		width:     width,
		pwm:       pwm,
	}, nil
}

func (s *FixedPulse) Next() (float64, bool) {
	w, ok := nextWidth(s.pwm, s.width)
	if !ok {
		return 0, false
	}
	return pulseAt(s.advance(), w, s.amplitude, s.bias), true
}
