// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"

	goaudio "github.com/go-audio/audio"
)

// FullScale returns the largest value a signed bitDepth-bit sample holds,
// or 0 for depths go-audio does not know.
func FullScale(bitDepth int) int {
	return goaudio.IntMaxSignedValue(bitDepth)
}

// FloatToInt truncates x toward zero and clamps it to the signed range of
// bitDepth. NaN becomes 0.
func FloatToInt(x float64, bitDepth int) int {
	hi := FullScale(bitDepth)
	lo := -hi - 1

	switch {
	case math.IsNaN(x):
		return 0
	case x >= float64(hi):
		return hi
	case x <= float64(lo):
		return lo
	}

	return int(x)
}
