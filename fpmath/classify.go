package fpmath

import "math"

// Classification is derived purely from the biased exponent and mantissa
// fields: all-ones exponent with a zero mantissa is an infinity, with a
// nonzero mantissa a NaN; anything else is finite.

// IsNaN reports whether x is an IEEE-754 "not-a-number" value.
func IsNaN(x float64) bool {
	b := math.Float64bits(x)
	return b&expMask64 == expMask64 && b&fracMask64 != 0
}

// IsInf reports whether x is an infinity of either sign.
func IsInf(x float64) bool {
	b := math.Float64bits(x)
	return b&expMask64 == expMask64 && b&fracMask64 == 0
}

// IsFinite reports whether x is neither infinite nor NaN.
func IsFinite(x float64) bool {
	return math.Float64bits(x)&expMask64 != expMask64
}

// IsNaN32 reports whether x is an IEEE-754 "not-a-number" value.
func IsNaN32(x float32) bool {
	b := math.Float32bits(x)
	return b&expMask32 == expMask32 && b&fracMask32 != 0
}

// IsInf32 reports whether x is an infinity of either sign.
func IsInf32(x float32) bool {
	b := math.Float32bits(x)
	return b&expMask32 == expMask32 && b&fracMask32 == 0
}

// IsFinite32 reports whether x is neither infinite nor NaN.
func IsFinite32(x float32) bool {
	return math.Float32bits(x)&expMask32 != expMask32
}
