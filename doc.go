// SPDX-License-Identifier: EPL-2.0

// Package wavesynth is a sample-rate waveform synthesizer.
//
// It produces sine, triangle, square, sawtooth, pulse, additive-harmonic,
// noise and linear-ramp signals, optionally shaped by frequency modulation
// (FM), pulse-width modulation (PWM), envelopes, delay, echo, mixing and
// clipping, and renders them as integer PCM samples.
//
// # Quick Start
//
//	synth, err := wavesynth.New(wavesynth.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	// one second of A4 as a 16-bit mono buffer
//	buf, err := synth.Sine(440, 1)
//
//	// the same tone, unbounded
//	seq, err := synth.SineStream(440)
//	for v := range seq {
//		...
//	}
//
// Every waveform has a bounded form returning a *goaudio.IntBuffer and a
// streaming form returning an iter.Seq[int]. The bounded buffer always
// equals the first values of the stream.
//
// # Parameters
//
// Amplitude and bias are fractions of full scale and default per waveform.
// They are set with functional options:
//
//	buf, err := synth.Pulse(110, 2,
//		wavesynth.WithAmplitude(0.5),
//		wavesynth.WithPWM(osc.NewFixedSine(osc.Params{Frequency: 0.5, Amplitude: 0.4, Bias: 0.5, SampleRate: 44100})),
//	)
//
// Invalid parameters (a frequency above Nyquist, an amplitude outside
// [0,1], a bias outside [-1,1]) fail before any sample is produced with an
// error wrapping ErrInvalidParameter.
//
// # Building Graphs
//
// Oscillators live in the osc subpackage and filters in the filter
// subpackage. Both work on audio.Producer, a pull-based stream of float64
// values. Render and Stream quantize any such graph:
//
//	full := float64(synth.FullScale())
//	lfo := osc.NewFixedSine(osc.Params{Frequency: 5, Amplitude: 0.01, SampleRate: 44100})
//	tone := osc.NewSine(osc.Params{Frequency: 440, Amplitude: 0.7 * full, SampleRate: 44100}, lfo)
//	echo, _ := filter.NewEcho(tone, filter.Echo{After: 0.5, Amount: 5, Delay: 0.2, Decay: 0.6}, 44100)
//	buf, err := synth.Render(echo, 3)
//
// # Formats
//
// formats/wav and formats/aiff write rendered buffers to files. Those
// packages, with formats/mp3 and formats/vorbis, also decode files into an
// audio.Source that audio.FromSource turns into a Producer.
package wavesynth
