// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFullScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		want int
	}{
		{16, math.MaxInt16},
		{32, math.MaxInt32},
		{24, 8388607},
		{12, 0},
	}

	for _, tt := range tests {
		if got := FullScale(tt.bits); got != tt.want {
			t.Errorf("FullScale(%d) = %d, want %d", tt.bits, got, tt.want)
		}
	}
}

func TestFloatToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		bits  int
		want  int
	}{
		{
			name:  "zero",
			input: 0,
			bits:  16,
			want:  0,
		},
		{
			name:  "truncates positive",
			input: 16383.9,
			bits:  16,
			want:  16383,
		},
		{
			name:  "truncates negative toward zero",
			input: -16383.9,
			bits:  16,
			want:  -16383,
		},
		{
			name:  "full scale",
			input: 32767,
			bits:  16,
			want:  math.MaxInt16,
		},
		{
			name:  "clamp over max",
			input: 40000,
			bits:  16,
			want:  math.MaxInt16,
		},
		{
			name:  "clamp under min",
			input: -40000,
			bits:  16,
			want:  math.MinInt16,
		},
		{
			name:  "32-bit range",
			input: 3e9,
			bits:  32,
			want:  math.MaxInt32,
		},
		{
			name:  "32-bit negative",
			input: -3e9,
			bits:  32,
			want:  math.MinInt32,
		},
		{
			name:  "infinity",
			input: math.Inf(1),
			bits:  16,
			want:  math.MaxInt16,
		},
		{
			name:  "nan",
			input: math.NaN(),
			bits:  16,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FloatToInt(tt.input, tt.bits); got != tt.want {
				t.Errorf("FloatToInt(%v, %d) = %d, want %d", tt.input, tt.bits, got, tt.want)
			}
		})
	}
}

// TestFloatToIntSymmetry checks that truncation does not favour either sign
func TestFloatToIntSymmetry(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0.4, 1.5, 100.99, 32766.7} {
		pos := FloatToInt(v, 16)
		neg := FloatToInt(-v, 16)
		if pos != -neg {
			t.Errorf("FloatToInt not symmetric: +%v=%d, -%v=%d", v, pos, v, neg)
		}
	}
}

func TestFloatToIntMonotonic(t *testing.T) {
	t.Parallel()

	prev := FloatToInt(-40000, 16)
	for f := -40000.0; f <= 40000; f += 7.3 {
		curr := FloatToInt(f, 16)
		if curr < prev {
			t.Fatalf("FloatToInt not monotonic: %v gives %d after %d", f, curr, prev)
		}
		prev = curr
	}
}

func TestFloatToInt_ZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = FloatToInt(0.5, 16)
	})

	if allocs > 0 {
		t.Errorf("FloatToInt allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloatToInt(b *testing.B) {
	samples := make([]float64, 8000)
	out := make([]int, len(samples))
	for i := range samples {
		samples[i] = math.Sin(float64(i)*0.1) * 40000
	}

	b.ReportAllocs()

	for b.Loop() {
		for j, s := range samples {
			out[j] = FloatToInt(s, 16)
		}
	}
}
