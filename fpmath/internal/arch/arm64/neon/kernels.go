//go:build arm64 && !purego

package neon

// Sqrt returns the nonnegative square root of x using FSQRTD.
func Sqrt(x float64) float64 {
	return sqrtAsm(x)
}

// Trunc rounds x toward zero using FRINTZD.
func Trunc(x float64) float64 {
	return truncAsm(x)
}

// Floor rounds x toward negative infinity using FRINTMD.
func Floor(x float64) float64 {
	return floorAsm(x)
}

// Ceil rounds x toward positive infinity using FRINTPD.
func Ceil(x float64) float64 {
	return ceilAsm(x)
}

// Assembly kernels (implemented in kernels.s)

//go:noescape
func sqrtAsm(x float64) float64

//go:noescape
func truncAsm(x float64) float64

//go:noescape
func floorAsm(x float64) float64

//go:noescape
func ceilAsm(x float64) float64
