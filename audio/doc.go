// SPDX-License-Identifier: EPL-2.0

// Package audio provides the primitives every synthesizer stage is built on.
//
// # Producer
//
// Producer is the central abstraction: anything that yields the next
// amplitude value on request.
//
//	type Producer interface {
//	    Next() (v float64, ok bool)
//	}
//
// Oscillators, filters and modulators all implement it, so any of them can
// be plugged into any other as a source, an FM input or a PWM input.
// Producers are pulled, never pushed: nothing runs until the consumer asks
// for the next value, and stopping consumption is the only cancellation.
//
// Helpers:
//   - Constant yields one value forever
//   - FromSlice yields a slice once
//   - ProducerFunc adapts a closure
//   - Take and Skip pull a bounded number of values
//
// # Fan-out
//
// A Producer is single-pass. Tee splits one into several branches that each
// replay the full remaining stream at their own pace:
//
//	branches := audio.Tee(src, 3)
//
// Values are kept in a shared buffer until every branch has read them.
//
// # Decoded sources
//
// Source is a block-reading PCM stream, as returned by the decoders under
// formats/. FromSource bridges a Source into a Producer, downmixing with
// MonoMixer when the source has more than one channel:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	p := audio.FromSource(src, 32767)
//
// The Registry maps format keys (file extensions) to decoders.
//
// # Errors
//
// ErrInvalidParameter and ErrUnsupportedFormat are shared by every stage
// and are always wrapped with context; test them with errors.Is.
package audio
