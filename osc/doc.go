// SPDX-License-Identifier: EPL-2.0

// Package osc implements the waveform generators of the synthesizer.
//
// Every oscillator is an audio.Producer. The continuous oscillators accept
// an optional frequency modulator: on every sample the frequency becomes
// Frequency*(1+fm) and a phase correction keeps the waveform continuous
// across the change. A modulator that ends ends the oscillator.
//
//	lfo := osc.NewFixedSine(osc.Params{Frequency: 5, Amplitude: 0.02, SampleRate: 44100})
//	vibrato := osc.NewSine(osc.Params{Frequency: 440, Amplitude: 1, SampleRate: 44100}, lfo)
//
// # Fixed tier
//
// FixedSine, FixedTriangle, FixedSquare, FixedSawtooth and FixedPulse run at
// a constant frequency. They skip the modulation bookkeeping and yield
// exactly the same values as their continuous counterparts built without a
// modulator.
//
// # Additive synthesis
//
// Harmonics sums sine partials and drops any partial above the Nyquist
// frequency. NewSquareH and NewSawtoothH build band-limited square and
// sawtooth waves from it.
//
// Amplitude and Bias are used as given; the caller decides the numeric range.
package osc
