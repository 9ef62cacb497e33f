// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/ik5/wavesynth/audio"
)

// WhiteNoise draws a uniform value in [-Amplitude, Amplitude] + Bias and
// holds it for SampleRate/Frequency samples before drawing again. The
// frequency sets the grain of the noise.
type WhiteNoise struct {
	rng       *rand.Rand
	amplitude float64
	bias      float64
	hold      int
	left      int
	value     float64
}

// NewWhiteNoise creates a noise source fed by rng. A nil rng gets a
// PCG generator with a zero seed.
func NewWhiteNoise(p Params, rng *rand.Rand) (*WhiteNoise, error) {
	if p.Frequency <= 0 {
		return nil, fmt.Errorf("%w: noise frequency %v must be positive", audio.ErrInvalidParameter, p.Frequency)
	}
	if p.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d must be positive", audio.ErrInvalidParameter, p.SampleRate)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}

	hold := max(int(math.Round(float64(p.SampleRate)/p.Frequency)), 1)

	return &WhiteNoise{
		rng:       rng,
		amplitude: p.Amplitude,
		bias:      p.Bias,
		hold:      hold,
	}, nil
}

// Hold returns how many samples each draw is repeated for.
func (s *WhiteNoise) Hold() int { return s.hold }

func (s *WhiteNoise) Next() (float64, bool) {
	if s.left == 0 {
		s.value = (s.rng.Float64()*2-1)*s.amplitude + s.bias
		s.left = s.hold
	}
	s.left--
	return s.value, true
}
