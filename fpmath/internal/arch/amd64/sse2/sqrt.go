//go:build amd64 && !purego

package sse2

// Sqrt returns the nonnegative square root of x using the SQRTSD
// instruction. The hardware handles every edge case per IEEE-754:
// negative operands yield NaN, ±0 passes through with its sign.
func Sqrt(x float64) float64 {
	return sqrtAsm(x)
}

// Assembly kernel (implemented in sqrt.s)

//go:noescape
func sqrtAsm(x float64) float64
