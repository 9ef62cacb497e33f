// SPDX-License-Identifier: EPL-2.0

// Package filter provides stages that transform or combine audio.Producer
// streams.
//
// Filters pull from their inputs once per output value, in argument
// order, and end as soon as any input ends. The exception is
// EnvelopeFilter, which keeps emitting silence after its Release unless
// StopAtEnd is set.
//
//	tone := osc.NewFixedSine(osc.Params{Frequency: 440, Amplitude: 1, SampleRate: sr})
//	note, err := filter.NewEnvelope(tone, filter.Envelope{
//		Attack: 0.01, Decay: 0.1, Sustain: 0.5, SustainLevel: 0.6, Release: 0.2,
//	}, sr)
//	if err != nil {
//		return err
//	}
//	echoed, err := filter.NewEcho(note, filter.Echo{After: 0.2, Amount: 4, Delay: 0.15, Decay: 0.5}, sr)
package filter
