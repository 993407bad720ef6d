package fpmath

import "math"

// Copysign returns a value with the magnitude of x and the sign of y.
// Works for zero, infinite, and NaN x; payload bits pass through untouched.
func Copysign(x, y float64) float64 {
	return math.Float64frombits(
		math.Float64bits(x)&^signMask64 | math.Float64bits(y)&signMask64)
}

// Copysign32 returns a value with the magnitude of x and the sign of y.
func Copysign32(x, y float32) float32 {
	return math.Float32frombits(
		math.Float32bits(x)&^signMask32 | math.Float32bits(y)&signMask32)
}

// Signbit reports whether the sign bit of x is set. Unlike x < 0 this is
// true for -0 and for NaNs with a negative sign bit.
func Signbit(x float64) bool {
	return math.Float64bits(x)&signMask64 != 0
}

// Signbit32 reports whether the sign bit of x is set.
func Signbit32(x float32) bool {
	return math.Float32bits(x)&signMask32 != 0
}
