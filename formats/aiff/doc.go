// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF (Audio Interchange File Format) files.
//
// This package uses github.com/go-audio/aiff. AIFF stores big-endian PCM
// and is the usual uncompressed format on macOS.
//
// # Writing Rendered Audio
//
//	buf, _ := synth.Triangle(220, 1)
//	file, _ := os.Create("a3.aiff")
//	defer file.Close()
//	err := aiff.Encode(file, buf)
//
// # Decoding AIFF Files
//
//	source, err := aiff.Decoder{}.Decode(file)
//
// Supported depths are 16, 24 and 32 bits, any channel count and sample
// rate. Samples are returned as float32 in [-1, 1).
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a FORM/AIFF file
//   - ErrUnsupportedBitDepth: depth other than 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: missing format information
//   - ErrEmptyBuffer: Encode was given nothing to write
package aiff
