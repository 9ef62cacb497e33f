// SPDX-License-Identifier: EPL-2.0

package wavesynth

import "github.com/ik5/wavesynth/audio"

// Default parameters.
const (
	// DefaultAmplitude applies to Sine, Triangle, SquareH and WhiteNoise.
	DefaultAmplitude = 0.9999
	// DefaultSharpAmplitude applies to Square, Sawtooth and Pulse.
	DefaultSharpAmplitude = 0.75
	// DefaultAdditiveAmplitude applies to SawtoothH and Harmonics.
	DefaultAdditiveAmplitude = 0.5

	DefaultPulseWidth = 0.1
	DefaultHarmonics  = 16
)

// Option changes one parameter of a waveform call.
type Option func(*settings)

type settings struct {
	amplitude  float64
	phase      float64
	bias       float64
	fm         audio.Producer
	pwm        audio.Producer
	pulseWidth float64
	harmonics  int
	seed       *uint64
}

func newSettings(amplitude float64, opts []Option) settings {
	st := settings{
		amplitude:  amplitude,
		pulseWidth: DefaultPulseWidth,
		harmonics:  DefaultHarmonics,
	}
	for _, opt := range opts {
		opt(&st)
	}
	return st
}

// WithAmplitude sets the peak level as a fraction of full scale, in [0,1].
func WithAmplitude(a float64) Option {
	return func(s *settings) { s.amplitude = a }
}

// WithPhase sets the start offset in periods.
func WithPhase(p float64) Option {
	return func(s *settings) { s.phase = p }
}

// WithBias sets the DC offset as a fraction of full scale, in [-1,1].
func WithBias(b float64) Option {
	return func(s *settings) { s.bias = b }
}

// WithFM modulates the frequency: every sample plays at
// frequency*(1+fm). Supplying FM selects the continuous oscillators.
func WithFM(fm audio.Producer) Option {
	return func(s *settings) { s.fm = fm }
}

// WithPWM drives the pulse width of Pulse from a producer. It overrides
// WithPulseWidth.
func WithPWM(pwm audio.Producer) Option {
	return func(s *settings) { s.pwm = pwm }
}

// WithPulseWidth sets a constant pulse width in [0,1].
func WithPulseWidth(w float64) Option {
	return func(s *settings) { s.pulseWidth = w }
}

// WithHarmonics sets the number of harmonics of SquareH and SawtoothH.
func WithHarmonics(n int) Option {
	return func(s *settings) { s.harmonics = n }
}

// WithSeed overrides Config.Seed for one WhiteNoise call.
func WithSeed(seed uint64) Option {
	return func(s *settings) { s.seed = &seed }
}
