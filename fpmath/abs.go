package fpmath

import "math"

// Abs returns the absolute value of x.
//
// The sign bit is cleared on the bit pattern directly, so -0 maps to +0 and
// NaN payload bits are preserved; no comparison-and-negate path is involved.
func Abs(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ signMask64)
}

// Abs32 returns the absolute value of x.
func Abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ signMask32)
}
