package fpmath

// Trunc returns the integer value of x with the fractional part discarded
// toward zero. Trunc(±0) = ±0, Trunc(±Inf) = ±Inf, Trunc(NaN) = NaN.
func Trunc(x float64) float64 {
	kernOnce.Do(initKernels)
	return kern.trunc(x)
}

// Floor returns the greatest integer value less than or equal to x.
// Floor(±0) = ±0, Floor(±Inf) = ±Inf, Floor(NaN) = NaN.
func Floor(x float64) float64 {
	kernOnce.Do(initKernels)
	return kern.floor(x)
}

// Ceil returns the least integer value greater than or equal to x.
// Ceil(±0) = ±0, Ceil(±Inf) = ±Inf, Ceil(NaN) = NaN.
func Ceil(x float64) float64 {
	kernOnce.Do(initKernels)
	return kern.ceil(x)
}

// Round returns Floor(x + 0.5): half-way cases round up, not to even, so
// Round(2.5) = 3 and Round(-2.5) = -2.
func Round(x float64) float64 {
	return Floor(x + 0.5)
}

// Lround returns Round(x) converted to int64. The conversion of values
// outside the int64 range (including Inf and NaN) is implementation-defined.
func Lround(x float64) int64 {
	return int64(Round(x))
}

// Trunc32 returns the integer value of x with the fractional part discarded
// toward zero, computed in double precision.
func Trunc32(x float32) float32 {
	return float32(Trunc(float64(x)))
}

// Floor32 returns the greatest integer value less than or equal to x,
// computed in double precision.
func Floor32(x float32) float32 {
	return float32(Floor(float64(x)))
}

// Ceil32 returns the least integer value greater than or equal to x,
// computed in double precision.
func Ceil32(x float32) float32 {
	return float32(Ceil(float64(x)))
}

// Round32 returns Floor32(x + 0.5), rounding half-way cases up.
func Round32(x float32) float32 {
	return Floor32(x + 0.5)
}

// Lround32 returns Round32(x) converted to int64.
func Lround32(x float32) int64 {
	return int64(Round32(x))
}
