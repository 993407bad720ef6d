package generic

import "math"

const (
	// sqrtTolerance is the absolute convergence bound of the Newton
	// iteration. It is not scale-invariant: for operands far from 1 the
	// spacing of adjacent floats exceeds it and the final guesses can only
	// oscillate around the root, which is why the iteration also carries a
	// hard cap.
	sqrtTolerance = 1e-15

	// sqrtMaxIter bounds the iteration count. Starting from g = x the
	// guess roughly halves each step until it nears the root, so the walk
	// from the extreme double exponents takes a little over 500 steps; the
	// cap leaves generous headroom and only decides the result where the
	// tolerance criterion cannot.
	sqrtMaxIter = 1100
)

func abs(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ signMask64)
}

// Sqrt returns the nonnegative square root of x using Newton-Raphson
// iteration g' = (g + x/g) / 2 from the initial guess g = x.
//
// Sqrt(x < 0) = NaN, Sqrt(±0) = ±0, Sqrt(+Inf) = +Inf, Sqrt(NaN) = NaN.
func Sqrt(x float64) float64 {
	if x < 0 {
		return nan()
	}
	if x == 0 {
		return x // preserves the sign of zero
	}
	if x != x || x > math.MaxFloat64 {
		return x // NaN and +Inf would poison the iteration (Inf/Inf = NaN)
	}

	guess := x
	for i := 0; i < sqrtMaxIter; i++ {
		prev := guess
		guess = (guess + x/guess) * 0.5
		if abs(guess-prev) < sqrtTolerance {
			break
		}
	}
	return guess
}
