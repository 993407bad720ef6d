package generic

// Fmod returns the floating-point remainder of x/y as x - Trunc(x/y)*y.
//
// Fmod(x, 0) = NaN; NaN and Inf operands propagate to NaN through the
// arithmetic. The single-division form is subject to cancellation when x/y
// is very large; the hardware kernels compute an exact partial remainder
// instead.
func Fmod(x, y float64) float64 {
	if y == 0 {
		return nan()
	}
	return x - Trunc(x/y)*y
}
