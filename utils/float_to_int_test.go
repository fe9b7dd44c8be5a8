// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

// The conversion scales by 32767 and clamps, so full-scale samples land
// exactly on the int16 extremes and everything in between truncates.
func TestFloat32ToInt16Exact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "silence", input: 0.0, want: 0},
		{name: "full scale positive", input: 1.0, want: math.MaxInt16},
		{name: "full scale negative", input: -1.0, want: math.MinInt16},
		{name: "half scale", input: 0.5, want: 16383},
		{name: "half scale negative", input: -0.5, want: -16383},
		{name: "quarter scale", input: 0.25, want: 8191},
		{name: "clipped above", input: 1.5, want: math.MaxInt16},
		{name: "clipped below", input: -1.5, want: math.MinInt16},
		{name: "far above range", input: 1000.0, want: math.MaxInt16},
		{name: "far below range", input: -1000.0, want: math.MinInt16},
		{name: "positive infinity", input: float32(math.Inf(1)), want: math.MaxInt16},
		{name: "negative infinity", input: float32(math.Inf(-1)), want: math.MinInt16},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			if got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt16NearFullScale checks samples just inside ±1.0: they
// must stay below the extremes so only true full scale hits MaxInt16 and
// MinInt16.
func TestFloat32ToInt16NearFullScale(t *testing.T) {
	t.Parallel()

	pos := Float32ToInt16(0.9999)
	if pos >= math.MaxInt16 {
		t.Errorf("Float32ToInt16(0.9999) = %v, want below %v", pos, math.MaxInt16)
	}

	neg := Float32ToInt16(-0.9999)
	if neg <= math.MinInt16 {
		t.Errorf("Float32ToInt16(-0.9999) = %v, want above %v", neg, math.MinInt16)
	}
}

// TestFloat32ToInt16Proportional sweeps the in-range domain and compares
// against a straight 32767 scale.
func TestFloat32ToInt16Proportional(t *testing.T) {
	t.Parallel()

	for i := -100; i <= 100; i++ {
		f := float32(i) / 100.0
		got := int32(Float32ToInt16(f))
		want := int32(f * 32767.0)

		if diff := got - want; diff < -1 || diff > 1 {
			t.Errorf("Float32ToInt16(%v) = %v, want %v within 1", f, got, want)
		}
	}
}

// TestFloat32ToInt16Symmetric verifies positive and negative samples of
// the same magnitude map to mirrored values, including at full scale
// where the asymmetric int16 range gives |min| = max + 1.
func TestFloat32ToInt16Symmetric(t *testing.T) {
	t.Parallel()

	for _, v := range []float32{0.125, 0.25, 0.5, 0.75, 0.875} {
		pos := int32(Float32ToInt16(v))
		neg := int32(Float32ToInt16(-v))

		if pos != -neg {
			t.Errorf("asymmetric conversion: Float32ToInt16(%v)=%v, Float32ToInt16(-%v)=%v",
				v, pos, v, neg)
		}
	}

	if got := int32(Float32ToInt16(1)) + int32(Float32ToInt16(-1)); got != -1 {
		t.Errorf("full-scale sum = %v, want -1", got)
	}
}

// TestFloat32ToInt16Monotonic walks across the whole domain including the
// clamp regions; output must never decrease.
func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-2.0)
	for i := -199; i <= 200; i++ {
		f := float32(i) / 100.0
		curr := Float32ToInt16(f)
		if curr < prev {
			t.Errorf("output decreased at %v: got %v after %v", f, curr, prev)
		}
		prev = curr
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	var result int16

	samples := make([]float32, 1024)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) / 64.0))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result = Float32ToInt16(samples[i%len(samples)])
	}

	_ = result
}

// TestFloat32ToInt16ZeroAllocs verifies the hot path stays on the stack.
func TestFloat32ToInt16ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.75)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}
