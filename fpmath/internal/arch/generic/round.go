package generic

import "math"

const (
	signMask64 = 1 << 63
	fracMask64 = 1<<52 - 1
	expBias64  = 1023

	uvnan = 0x7FF8000000000001
)

func nan() float64 { return math.Float64frombits(uvnan) }

// Trunc rounds x toward zero to an integer value.
//
// The fractional mantissa bits are masked off directly on the bit pattern,
// so the result is exact for every input: values with an exponent of 52 or
// more carry no fractional bits (this also covers Inf and NaN), and values
// below 1 in magnitude truncate to a zero with the sign of x.
func Trunc(x float64) float64 {
	b := math.Float64bits(x)
	e := int(b>>52&0x7FF) - expBias64
	switch {
	case e >= 52:
		return x
	case e < 0:
		return math.Float64frombits(b & signMask64)
	default:
		return math.Float64frombits(b &^ (fracMask64 >> uint(e)))
	}
}

// Floor rounds x toward negative infinity: the truncation moved toward zero
// past the true floor exactly when it produced a value above x.
func Floor(x float64) float64 {
	t := Trunc(x)
	if t > x {
		return t - 1
	}
	return t
}

// Ceil rounds x toward positive infinity, mirroring Floor.
func Ceil(x float64) float64 {
	t := Trunc(x)
	if t < x {
		return t + 1
	}
	return t
}
