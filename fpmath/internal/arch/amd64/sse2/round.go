//go:build amd64 && !purego

package sse2

// The x87 rounding kernels share the control-word discipline required of a
// primitives layer: the control word is saved, its rounding-control bits
// are set for the one FRNDINT execution, and the saved word is restored
// before returning, so no shared floating-point state leaks across calls.

// Trunc rounds x toward zero using FRNDINT under RC = truncate.
func Trunc(x float64) float64 {
	return truncAsm(x)
}

// Floor rounds x toward negative infinity using FRNDINT under RC = down.
func Floor(x float64) float64 {
	return floorAsm(x)
}

// Ceil rounds x toward positive infinity using FRNDINT under RC = up.
func Ceil(x float64) float64 {
	return ceilAsm(x)
}

// Assembly kernels (implemented in round.s)

//go:noescape
func truncAsm(x float64) float64

//go:noescape
func floorAsm(x float64) float64

//go:noescape
func ceilAsm(x float64) float64
