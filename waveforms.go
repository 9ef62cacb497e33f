// SPDX-License-Identifier: EPL-2.0

package wavesynth

import (
	"fmt"
	"iter"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavesynth/audio"
	"github.com/ik5/wavesynth/osc"
)

func (s *Synth) sine(freq float64, opts []Option) (audio.Producer, error) {
	st := newSettings(DefaultAmplitude, opts)
	p, err := s.params(freq, st)
	if err != nil {
		return nil, fmt.Errorf("sine: %w", err)
	}
	if st.fm != nil {
		return osc.NewSine(p, st.fm), nil
	}
	return osc.NewFixedSine(p), nil
}

func (s *Synth) triangle(freq float64, opts []Option) (audio.Producer, error) {
	st := newSettings(DefaultAmplitude, opts)
	p, err := s.params(freq, st)
	if err != nil {
		return nil, fmt.Errorf("triangle: %w", err)
	}
	if st.fm != nil {
		return osc.NewTriangle(p, st.fm), nil
	}
	return osc.NewFixedTriangle(p), nil
}

func (s *Synth) square(freq float64, opts []Option) (audio.Producer, error) {
	st := newSettings(DefaultSharpAmplitude, opts)
	p, err := s.params(freq, st)
	if err != nil {
		return nil, fmt.Errorf("square: %w", err)
	}
	if st.fm != nil {
		return osc.NewSquare(p, st.fm), nil
	}
	return osc.NewFixedSquare(p), nil
}

func (s *Synth) sawtooth(freq float64, opts []Option) (audio.Producer, error) {
	st := newSettings(DefaultSharpAmplitude, opts)
	p, err := s.params(freq, st)
	if err != nil {
		return nil, fmt.Errorf("sawtooth: %w", err)
	}
	if st.fm != nil {
		return osc.NewSawtooth(p, st.fm), nil
	}
	return osc.NewFixedSawtooth(p), nil
}

func (s *Synth) pulse(freq float64, opts []Option) (audio.Producer, error) {
	st := newSettings(DefaultSharpAmplitude, opts)
	p, err := s.params(freq, st)
	if err != nil {
		return nil, fmt.Errorf("pulse: %w", err)
	}

	var out audio.Producer
	if st.fm != nil {
		out, err = osc.NewPulse(p, st.pulseWidth, st.fm, st.pwm)
	} else {
		out, err = osc.NewFixedPulse(p, st.pulseWidth, st.pwm)
	}
	if err != nil {
		return nil, fmt.Errorf("pulse: %w", err)
	}

	return out, nil
}

func (s *Synth) harmonicCount(st settings) error {
	if st.harmonics < 1 {
		return fmt.Errorf("%w: harmonic count %d must be at least 1", ErrInvalidParameter, st.harmonics)
	}
	return nil
}

func (s *Synth) squareH(freq float64, opts []Option) (audio.Producer, error) {
	st := newSettings(DefaultAmplitude, opts)
	p, err := s.params(freq, st)
	if err == nil {
		err = s.harmonicCount(st)
	}
	if err != nil {
		return nil, fmt.Errorf("square-h: %w", err)
	}
	return osc.NewSquareH(p, st.harmonics, st.fm), nil
}

func (s *Synth) sawtoothH(freq float64, opts []Option) (audio.Producer, error) {
	st := newSettings(DefaultAdditiveAmplitude, opts)
	p, err := s.params(freq, st)
	if err == nil {
		err = s.harmonicCount(st)
	}
	if err != nil {
		return nil, fmt.Errorf("sawtooth-h: %w", err)
	}
	return osc.NewSawtoothH(p, st.harmonics, st.fm), nil
}

func (s *Synth) harmonics(freq float64, harmonics []osc.Harmonic, opts []Option) (audio.Producer, error) {
	st := newSettings(DefaultAdditiveAmplitude, opts)
	p, err := s.params(freq, st)
	if err != nil {
		return nil, fmt.Errorf("harmonics: %w", err)
	}
	return osc.NewHarmonics(p, harmonics, st.fm), nil
}

func (s *Synth) whiteNoise(freq float64, opts []Option) (audio.Producer, error) {
	st := newSettings(DefaultAmplitude, opts)
	p, err := s.params(freq, st)
	if err != nil {
		return nil, fmt.Errorf("white noise: %w", err)
	}
	n, err := osc.NewWhiteNoise(p, s.rng(st))
	if err != nil {
		return nil, fmt.Errorf("white noise: %w", err)
	}
	return n, nil
}

// linear returns a ramp from start to finish over duration and its length
// in samples.
func (s *Synth) linear(start, finish, duration float64) (audio.Producer, int, error) {
	switch {
	case start < -1 || start > 1:
		return nil, 0, fmt.Errorf("linear: %w: start level %v outside [-1,1]", ErrInvalidParameter, start)
	case finish < -1 || finish > 1:
		return nil, 0, fmt.Errorf("linear: %w: finish level %v outside [-1,1]", ErrInvalidParameter, finish)
	}

	n, err := s.numSamples(duration)
	if err != nil {
		return nil, 0, fmt.Errorf("linear: %w", err)
	}
	if n < 1 {
		return nil, 0, fmt.Errorf("linear: %w: duration %v is shorter than one sample", ErrInvalidParameter, duration)
	}

	var inc float64
	if n > 1 {
		inc = (finish - start) * s.scale / float64(n-1)
	}

	return osc.NewLinear(start*s.scale, inc, -s.scale, s.scale), n, nil
}

// Sine renders duration seconds of a sine wave.
func (s *Synth) Sine(freq, duration float64, opts ...Option) (*goaudio.IntBuffer, error) {
	p, err := s.sine(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Render(p, duration)
}

// SineStream returns an endless sine wave.
func (s *Synth) SineStream(freq float64, opts ...Option) (iter.Seq[int], error) {
	p, err := s.sine(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Stream(p), nil
}

// Triangle renders duration seconds of a triangle wave.
func (s *Synth) Triangle(freq, duration float64, opts ...Option) (*goaudio.IntBuffer, error) {
	p, err := s.triangle(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Render(p, duration)
}

// TriangleStream returns an endless triangle wave.
func (s *Synth) TriangleStream(freq float64, opts ...Option) (iter.Seq[int], error) {
	p, err := s.triangle(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Stream(p), nil
}

// Square renders duration seconds of a square wave.
func (s *Synth) Square(freq, duration float64, opts ...Option) (*goaudio.IntBuffer, error) {
	p, err := s.square(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Render(p, duration)
}

// SquareStream returns an endless square wave.
func (s *Synth) SquareStream(freq float64, opts ...Option) (iter.Seq[int], error) {
	p, err := s.square(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Stream(p), nil
}

// SquareH renders a band-limited square wave built from odd harmonics.
// WithHarmonics sets how many.
func (s *Synth) SquareH(freq, duration float64, opts ...Option) (*goaudio.IntBuffer, error) {
	p, err := s.squareH(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Render(p, duration)
}

func (s *Synth) SquareHStream(freq float64, opts ...Option) (iter.Seq[int], error) {
	p, err := s.squareH(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Stream(p), nil
}

// Sawtooth renders duration seconds of a sawtooth wave.
func (s *Synth) Sawtooth(freq, duration float64, opts ...Option) (*goaudio.IntBuffer, error) {
	p, err := s.sawtooth(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Render(p, duration)
}

func (s *Synth) SawtoothStream(freq float64, opts ...Option) (iter.Seq[int], error) {
	p, err := s.sawtooth(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Stream(p), nil
}

// SawtoothH renders a band-limited sawtooth built from harmonics.
func (s *Synth) SawtoothH(freq, duration float64, opts ...Option) (*goaudio.IntBuffer, error) {
	p, err := s.sawtoothH(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Render(p, duration)
}

func (s *Synth) SawtoothHStream(freq float64, opts ...Option) (iter.Seq[int], error) {
	p, err := s.sawtoothH(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Stream(p), nil
}

// Pulse renders duration seconds of a pulse wave. The width comes from
// WithPulseWidth or WithPWM.
func (s *Synth) Pulse(freq, duration float64, opts ...Option) (*goaudio.IntBuffer, error) {
	p, err := s.pulse(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Render(p, duration)
}

func (s *Synth) PulseStream(freq float64, opts ...Option) (iter.Seq[int], error) {
	p, err := s.pulse(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Stream(p), nil
}

// Harmonics renders an additive waveform from the given partials.
// Partials above the Nyquist frequency are left out.
func (s *Synth) Harmonics(freq float64, harmonics []osc.Harmonic, duration float64, opts ...Option) (*goaudio.IntBuffer, error) {
	p, err := s.harmonics(freq, harmonics, opts)
	if err != nil {
		return nil, err
	}
	return s.Render(p, duration)
}

func (s *Synth) HarmonicsStream(freq float64, harmonics []osc.Harmonic, opts ...Option) (iter.Seq[int], error) {
	p, err := s.harmonics(freq, harmonics, opts)
	if err != nil {
		return nil, err
	}
	return s.Stream(p), nil
}

// WhiteNoise renders noise that draws a new value freq times per second.
func (s *Synth) WhiteNoise(freq, duration float64, opts ...Option) (*goaudio.IntBuffer, error) {
	p, err := s.whiteNoise(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Render(p, duration)
}

func (s *Synth) WhiteNoiseStream(freq float64, opts ...Option) (iter.Seq[int], error) {
	p, err := s.whiteNoise(freq, opts)
	if err != nil {
		return nil, err
	}
	return s.Stream(p), nil
}

// Linear renders a ramp from start to finish, both fractions of full
// scale, lasting duration seconds.
func (s *Synth) Linear(start, finish, duration float64) (*goaudio.IntBuffer, error) {
	p, n, err := s.linear(start, finish, duration)
	if err != nil {
		return nil, err
	}
	return s.render(p, n), nil
}

// LinearStream is the streaming form of Linear. Unlike the other streams
// it ends after duration seconds.
func (s *Synth) LinearStream(start, finish, duration float64) (iter.Seq[int], error) {
	p, n, err := s.linear(start, finish, duration)
	if err != nil {
		return nil, err
	}
	return s.stream(p, n), nil
}
