package utils

import "math"

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clamping to
// the int16 range. The scale is asymmetric so ±1.0 map to the exact
// extremes.
func Float32ToInt16(x float32) int16 {
	if x >= 1 {
		return math.MaxInt16
	}
	if x <= -1 {
		return math.MinInt16
	}

	return int16(x * 32767.0)
}
