// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"
	"math"

	"github.com/ik5/wavesynth/audio"
)

// echoFloor is the quietest echo worth generating, relative to the source.
const echoFloor = 1e-6

// Echo describes delayed, decaying copies of a signal.
type Echo struct {
	// After is how long the source plays unchanged before echoes start,
	// in seconds.
	After float64
	// Amount is the number of echoes.
	Amount int
	// Delay between echoes in seconds.
	Delay float64
	// Decay is the gain applied per echo; echo i plays at Decay^i.
	Decay float64
}

// EchoFilter mixes a source with delayed copies of itself.
//
// The copies share one read of the source through audio.Tee. The mix ends
// when the undelayed copy ends, which cuts the echo tails.
type EchoFilter struct {
	src     audio.Producer
	cfg     Echo
	rate    int
	echoes  int
	through int
	out     audio.Producer
}

// NewEcho builds an echo over src. When 0 < |Decay| < 1 the number of
// echoes is capped so the quietest one stays above 1e-6 of the source.
func NewEcho(src audio.Producer, cfg Echo, sampleRate int) (*EchoFilter, error) {
	switch {
	case sampleRate <= 0:
		return nil, fmt.Errorf("%w: sample rate %d must be positive", audio.ErrInvalidParameter, sampleRate)
	case cfg.After < 0:
		return nil, fmt.Errorf("%w: echo start %v is negative", audio.ErrInvalidParameter, cfg.After)
	case cfg.Delay < 0:
		return nil, fmt.Errorf("%w: echo delay %v is negative", audio.ErrInvalidParameter, cfg.Delay)
	case cfg.Amount < 0:
		return nil, fmt.Errorf("%w: echo amount %d is negative", audio.ErrInvalidParameter, cfg.Amount)
	}

	return &EchoFilter{
		src:     src,
		cfg:     cfg,
		rate:    sampleRate,
		echoes:  cappedEchoes(cfg.Amount, cfg.Decay),
		through: int(math.Round(cfg.After * float64(sampleRate))),
	}, nil
}

func cappedEchoes(amount int, decay float64) int {
	d := math.Abs(decay)
	switch {
	case d == 0:
		return 0
	case d < 1:
		limit := math.Log(echoFloor) / math.Log(d)
		return int(min(float64(amount), limit))
	}
	return amount
}

// Echoes reports how many echoes are generated after capping.
func (e *EchoFilter) Echoes() int { return e.echoes }

func (e *EchoFilter) start() {
	branches := audio.Tee(e.src, e.echoes+1)

	stages := make([]audio.Producer, len(branches))
	gain := 1.0
	for i, b := range branches {
		stages[i] = Gain(NewDelay(b, float64(i)*e.cfg.Delay, e.rate), gain)
		gain *= e.cfg.Decay
	}

	e.out = NewMix(stages...)
}

func (e *EchoFilter) Next() (float64, bool) {
	if e.through > 0 {
		e.through--
		return e.src.Next()
	}
	if e.out == nil {
		e.start()
	}
	return e.out.Next()
}
