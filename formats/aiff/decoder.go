// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/wavesynth/audio"
	"github.com/ik5/wavesynth/internal/pcm"
)

func supportedDepth(bits int) bool {
	return bits == 16 || bits == 24 || bits == 32
}

// Decoder reads integer PCM AIFF files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	if !supportedDepth(int(dec.BitDepth)) {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	if dec.Format() == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return pcm.NewSource(dec, int(dec.BitDepth)), nil
}
