//go:build amd64 && !purego

package avx

// Trunc rounds x toward zero with ROUNDSD (immediate mode 3).
func Trunc(x float64) float64 {
	return truncAsm(x)
}

// Floor rounds x toward negative infinity with ROUNDSD (immediate mode 1).
func Floor(x float64) float64 {
	return floorAsm(x)
}

// Ceil rounds x toward positive infinity with ROUNDSD (immediate mode 2).
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
