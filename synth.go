// SPDX-License-Identifier: EPL-2.0

package wavesynth

import (
	"fmt"
	"math/rand/v2"

	"github.com/ik5/wavesynth/osc"
	"github.com/ik5/wavesynth/utils"
)

// defaultSeed seeds WhiteNoise when Config.Seed is zero.
const defaultSeed = 0x5eed

// Config selects the output format of a Synth.
type Config struct {
	// SampleRate in Hz.
	SampleRate int
	// SampleWidth in bytes per sample: 2 or 4.
	SampleWidth int
	// Seed for WhiteNoise. Zero picks a fixed default, so renders are
	// reproducible unless a seed is chosen.
	Seed uint64
}

// DefaultConfig returns 44.1kHz 16-bit output.
func DefaultConfig() Config {
	return Config{SampleRate: 44100, SampleWidth: 2}
}

// Synth builds oscillators scaled to an integer sample format and renders
// them. A Synth holds no mutable state and may be shared between
// goroutines; the producers and streams it returns may not.
type Synth struct {
	cfg   Config
	bits  int
	scale float64
}

// New validates cfg and returns a Synth for it.
//
// Returns ErrUnsupportedFormat for sample widths other than 2 or 4 bytes
// and ErrInvalidParameter for a non-positive sample rate.
func New(cfg Config) (*Synth, error) {
	if cfg.SampleWidth != 2 && cfg.SampleWidth != 4 {
		return nil, fmt.Errorf("%w: sample width %d bytes, want 2 or 4", ErrUnsupportedFormat, cfg.SampleWidth)
	}
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidParameter, cfg.SampleRate)
	}

	bits := cfg.SampleWidth * 8
	return &Synth{
		cfg:   cfg,
		bits:  bits,
		scale: float64(utils.FullScale(bits)),
	}, nil
}

// SampleRate returns the configured rate in Hz.
func (s *Synth) SampleRate() int { return s.cfg.SampleRate }

// SampleWidth returns the configured sample width in bytes.
func (s *Synth) SampleWidth() int { return s.cfg.SampleWidth }

// FullScale returns the largest sample value, 32767 for 16-bit output.
// Amplitudes passed to the waveform methods are fractions of it.
func (s *Synth) FullScale() int { return int(s.scale) }

// params checks the common parameters and scales them to the sample range.
func (s *Synth) params(freq float64, st settings) (osc.Params, error) {
	nyquist := float64(s.cfg.SampleRate) / 2
	switch {
	case freq > nyquist:
		return osc.Params{}, fmt.Errorf("%w: frequency %v above Nyquist %v", ErrInvalidParameter, freq, nyquist)
	case st.amplitude < 0 || st.amplitude > 1:
		return osc.Params{}, fmt.Errorf("%w: amplitude %v outside [0,1]", ErrInvalidParameter, st.amplitude)
	case st.bias < -1 || st.bias > 1:
		return osc.Params{}, fmt.Errorf("%w: bias %v outside [-1,1]", ErrInvalidParameter, st.bias)
	}

	return osc.Params{
		Frequency:  freq,
		Amplitude:  st.amplitude * s.scale,
		Phase:      st.phase,
		Bias:       st.bias * s.scale,
		SampleRate: s.cfg.SampleRate,
	}, nil
}

func (s *Synth) rng(st settings) *rand.Rand {
	seed := s.cfg.Seed
	if st.seed != nil {
		seed = *st.seed
	}
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// numSamples converts a duration in seconds to a sample count.
func (s *Synth) numSamples(duration float64) (int, error) {
	if duration < 0 {
		return 0, fmt.Errorf("%w: duration %v is negative", ErrInvalidParameter, duration)
	}
	return int(duration * float64(s.cfg.SampleRate)), nil
}
