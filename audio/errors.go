// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidParameter reports a parameter outside its documented range.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrUnsupportedFormat reports a sample width or layout that cannot be produced.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrInvalidDstSize reports a read buffer that does not hold whole frames.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
)
