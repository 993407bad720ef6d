package fpmath

// Fmod returns the floating-point remainder of x/y, with the sign of x and
// magnitude less than the magnitude of y.
//
// Fmod(x, 0) = NaN, Fmod(±Inf, y) = NaN, Fmod(NaN, y) = Fmod(x, NaN) = NaN.
func Fmod(x, y float64) float64 {
	kernOnce.Do(initKernels)
	return kern.fmod(x, y)
}

// Fmod32 returns the floating-point remainder of x/y, computed in double
// precision.
func Fmod32(x, y float32) float32 {
	return float32(Fmod(float64(x), float64(y)))
}
