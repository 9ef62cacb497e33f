// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"fmt"

	"github.com/ik5/wavesynth/audio"
)

// Pulse is high for the first pulse-width fraction of every period and low
// for the rest. The width comes from a PWM producer when one is given,
// otherwise from the constant set at construction. Widths are clamped
// strictly inside (0,1).
type Pulse struct {
	phasor
	amplitude float64
	bias      float64
	width     float64
	pwm       audio.Producer
}

func checkWidth(width float64) error {
	if width < 0 || width > 1 {
		return fmt.Errorf("%w: pulse width %v outside [0,1]", audio.ErrInvalidParameter, width)
	}
	return nil
}

// NewPulse creates a pulse oscillator with optional FM and PWM. width is
// ignored when pwm is set.
func NewPulse(p Params, width float64, fm, pwm audio.Producer) (*Pulse, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}

	inc, off := linear(p)
	return &Pulse{
		phasor:    newPhasor(p.Frequency, off, inc, fm),
		amplitude: p.Amplitude,
		bias:      p.Bias,
		width:     width,
		pwm:       pwm,
	}, nil
}

func nextWidth(pwm audio.Producer, fixed float64) (float64, bool) {
	if pwm == nil {
		return clampWidth(fixed), true
	}
	w, ok := pwm.Next()
	if !ok {
		return 0, false
	}
	return clampWidth(w), true
}

func (s *Pulse) Next() (float64, bool) {
	w, ok := nextWidth(s.pwm, s.width)
	if !ok {
		return 0, false
	}
	x, ok := s.advance()
	if !ok {
		return 0, false
	}
	return pulseAt(x, w, s.amplitude, s.bias), true
}
