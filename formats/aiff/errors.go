// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"

	"github.com/ik5/wavesynth/internal/pcm"
)

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates a depth other than 16, 24 or 32 bits
	ErrUnsupportedBitDepth = errors.New("unsupported AIFF bit depth")

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrEmptyBuffer is returned by Encode for a nil or unformatted buffer
	ErrEmptyBuffer = pcm.ErrEmptyBuffer
)
