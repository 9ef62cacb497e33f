// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavesynth/internal/pcm"
)

// Encode writes buf to w as a big-endian PCM AIFF file, at
// buf.SourceBitDepth bits (16 when unset).
func Encode(w io.WriteSeeker, buf *goaudio.IntBuffer) error {
	if err := pcm.CheckBuffer(buf); err != nil {
		return err
	}

	depth := pcm.BitDepth(buf)
	if !supportedDepth(depth) {
		return fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, depth)
	}

	enc := aiff.NewEncoder(w, buf.Format.SampleRate, depth, buf.Format.NumChannels)
	if err := pcm.Encode(enc, buf); err != nil {
		return fmt.Errorf("aiff: %w", err)
	}

	return nil
}
