package fpmath

// Sqrt returns the nonnegative square root of x.
//
// Sqrt(x < 0) = NaN, Sqrt(±0) = ±0 (the sign of zero is preserved),
// Sqrt(+Inf) = +Inf, Sqrt(NaN) = NaN.
//
// The hardware kernel is a single instruction and bit-exact. The portable
// kernel is a Newton-Raphson iteration with a fixed absolute convergence
// tolerance; see the generic kernel for its precision limitations.
func Sqrt(x float64) float64 {
	kernOnce.Do(initKernels)
	return kern.sqrt(x)
}

// Sqrt32 returns the nonnegative square root of x, computed in double
// precision.
func Sqrt32(x float32) float32 {
	return float32(Sqrt(float64(x)))
}
