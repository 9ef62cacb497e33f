// SPDX-License-Identifier: EPL-2.0

package wavesynth

import (
	"iter"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavesynth/audio"
	"github.com/ik5/wavesynth/utils"
)

// Render pulls duration seconds from p and quantizes them into a mono
// buffer at the Synth's rate and bit depth.
//
// p may be any graph: an oscillator, an envelope, an echo. Its values are
// taken as-is in sample units, so build it against FullScale. Values are
// truncated toward zero and clamped to the sample range.
//
// The buffer is shorter than requested only when p ends early.
//
// Example:
//
//	sr := synth.SampleRate()
//	full := float64(synth.FullScale())
//	tone := osc.NewFixedSine(osc.Params{Frequency: 440, Amplitude: 0.8 * full, SampleRate: sr})
//	note, _ := filter.NewEnvelope(tone, filter.Envelope{Attack: 0.05, Sustain: 1, SustainLevel: 1, Release: 0.5}, sr)
//	buf, err := synth.Render(note, 2)
func (s *Synth) Render(p audio.Producer, duration float64) (*goaudio.IntBuffer, error) {
	n, err := s.numSamples(duration)
	if err != nil {
		return nil, err
	}
	return s.render(p, n), nil
}

func (s *Synth) render(p audio.Producer, n int) *goaudio.IntBuffer {
	data := make([]int, 0, n)
	for range n {
		v, ok := p.Next()
		if !ok {
			break
		}
		data = append(data, utils.FloatToInt(v, s.bits))
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  s.cfg.SampleRate,
		},
		Data:           data,
		SourceBitDepth: s.bits,
	}
}

// Stream quantizes p lazily. The sequence ends only when p ends; the
// caller stops it by breaking out of the range loop. It shares p, so it
// can be ranged over once.
func (s *Synth) Stream(p audio.Producer) iter.Seq[int] {
	return s.stream(p, -1)
}

// stream yields at most limit values, or all of them when limit < 0.
func (s *Synth) stream(p audio.Producer, limit int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; limit < 0 || i < limit; i++ {
			v, ok := p.Next()
			if !ok {
				return
			}
			if !yield(utils.FloatToInt(v, s.bits)) {
				return
			}
		}
	}
}
