package fpmath

import "math"

// bitsEqual compares two floats by bit pattern, so -0 differs from +0 and
// any NaN equals any NaN (payloads are not compared; the primitives make no
// payload guarantee beyond Abs/Copysign pass-through).
func bitsEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Float64bits(a) == math.Float64bits(b)
}

// closeEnough is the relative-error check used where the portable Newton
// kernel may be in play and exact equality is too strict.
func closeEnough(a, b float64) bool {
	const epsilon = 1e-14
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < epsilon
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) < epsilon
}
