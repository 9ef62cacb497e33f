// SPDX-License-Identifier: EPL-2.0

package filter

import "github.com/ik5/wavesynth/audio"

// Mix sums one value from every source per output value. Sources are
// advanced in argument order; the first one to end ends the mix.
type Mix struct {
	sources []audio.Producer
	done    bool
}

func NewMix(sources ...audio.Producer) *Mix {
	return &Mix{sources: sources}
}

func (m *Mix) Next() (float64, bool) {
	if m.done {
		return 0, false
	}

	var sum float64
	for _, s := range m.sources {
		v, ok := s.Next()
		if !ok {
			m.done = true
			return 0, false
		}
		sum += v
	}

	return sum, true
}

// AmpMod multiplies a source by a modulator, sample by sample.
type AmpMod struct {
	src audio.Producer
	mod audio.Producer
}

func NewAmpMod(src, modulator audio.Producer) *AmpMod {
	return &AmpMod{src: src, mod: modulator}
}

func (a *AmpMod) Next() (float64, bool) {
	v, ok := a.src.Next()
	if !ok {
		return 0, false
	}
	m, ok := a.mod.Next()
	if !ok {
		return 0, false
	}
	return v * m, true
}

// Gain scales a source by a constant factor.
func Gain(src audio.Producer, factor float64) *AmpMod {
	return NewAmpMod(src, audio.Constant(factor))
}
