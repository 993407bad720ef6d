//go:build amd64 && !purego

package sse2

// Fmod returns the floating-point remainder of x/y using the x87 FPREM
// instruction, looping until the C2 status flag reports the reduction
// complete. FPREM computes an exact partial remainder, so large quotients
// lose no precision, and invalid operands (y == 0, infinite x) come back
// as NaN from the hardware.
func Fmod(x, y float64) float64 {
	return fmodAsm(x, y)
}

// Assembly kernel (implemented in fmod.s)

//go:noescape
func fmodAsm(x, y float64) float64
