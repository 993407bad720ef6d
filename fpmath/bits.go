package fpmath

import "math"

// IEEE-754 field masks. Only the bit-conversion intrinsics are used from
// the math package; every operation here works on these fields directly.
const (
	signMask64 = 1 << 63
	expMask64  = 0x7FF << 52
	fracMask64 = 1<<52 - 1

	signMask32 = 1 << 31
	expMask32  = 0xFF << 23
	fracMask32 = 1<<23 - 1

	uvnan = 0x7FF8000000000001
)

// NaN returns an IEEE-754 quiet "not-a-number" value.
func NaN() float64 { return math.Float64frombits(uvnan) }
