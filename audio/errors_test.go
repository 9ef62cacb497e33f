// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"invalid parameter", ErrInvalidParameter, "invalid parameter"},
		{"unsupported format", ErrUnsupportedFormat, "unsupported format"},
		{"invalid dst size", ErrInvalidDstSize, "dst size must be multiple of channels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err == nil {
				t.Fatal("sentinel is nil")
			}
			if tt.err.Error() != tt.msg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.msg)
			}
		})
	}
}

func TestSentinelErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: frequency 30000 above 22050", ErrInvalidParameter)
	if !errors.Is(wrapped, ErrInvalidParameter) {
		t.Error("errors.Is() failed for wrapped ErrInvalidParameter")
	}
	if errors.Is(wrapped, ErrUnsupportedFormat) {
		t.Error("errors.Is() matched the wrong sentinel")
	}

	joined := errors.Join(ErrUnsupportedFormat, errors.New("additional context"))
	if !errors.Is(joined, ErrUnsupportedFormat) {
		t.Error("errors.Is() failed for joined ErrUnsupportedFormat")
	}
}
