// SPDX-License-Identifier: EPL-2.0

package effects

type normMode int

const (
	normDefault normMode = iota
	normDivisor
	normScale
	normOff
)

// defaultDivisor maps signed 32-bit integer scale samples into [-1, 1].
const defaultDivisor = float64(1 << 31)

// Normalization selects how executed output is scaled in place. The zero
// value is the default mode: every sample is divided by 1<<31, which maps
// signed 32-bit integer scale engine output into [-1, 1].
type Normalization struct {
	mode    normMode
	divisor float64
	scale   func([]float32) float64
}

// DefaultNormalization divides every sample by 1<<31.
func DefaultNormalization() Normalization { return Normalization{mode: normDefault} }

// NormalizeBy divides every sample by the given constant.
func NormalizeBy(divisor float64) Normalization {
	return Normalization{mode: normDivisor, divisor: divisor}
}

// NormalizeWith calls fn with the raw samples, then divides every sample by
// the scalar it returns.
func NormalizeWith(fn func([]float32) float64) Normalization {
	return Normalization{mode: normScale, scale: fn}
}

// NoNormalization leaves the engine output untouched.
func NoNormalization() Normalization { return Normalization{mode: normOff} }

// apply scales data in place per the configured mode.
func (n Normalization) apply(data []float32) {
	var divisor float64

	switch n.mode {
	case normDefault:
		divisor = defaultDivisor
	case normDivisor:
		divisor = n.divisor
	case normScale:
		divisor = n.scale(data)
	case normOff:
		return
	}

	factor := float32(1.0 / divisor)
	for i := range data {
		data[i] *= factor
	}
}
