// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/wavesynth/audio"
	"github.com/ik5/wavesynth/internal/pcm"
)

// formatPCM is the WAVE_FORMAT_PCM tag.
const formatPCM = 1

func supportedDepth(bits int) bool {
	return bits == 16 || bits == 24 || bits == 32
}

// Decoder reads integer PCM WAV files.
type Decoder struct{}

// Decode parses the headers of a WAV stream and returns its samples as an
// audio.Source. Readers that cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: audio format %d is not PCM", ErrUnsupportedWavLayout, dec.WavAudioFormat)
	}
	if !supportedDepth(int(dec.BitDepth)) {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}
	if dec.Format() == nil {
		return nil, ErrUnsupportedWavLayout
	}

	return pcm.NewSource(dec, int(dec.BitDepth)), nil
}
