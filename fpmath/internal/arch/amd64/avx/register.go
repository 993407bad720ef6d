//go:build amd64 && !purego

package avx

import (
	"github.com/cwbudde/algo-libc/fpmath/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the ROUNDSD rounding kernels with the fpmath registry.
//
// ROUNDSD is an SSE4.1 instruction; gating on the AVX level guarantees its
// presence (every AVX CPU implements SSE4.1) without growing the cpu
// package's level set. The rounding mode is encoded in the instruction
// immediate, so unlike the x87 kernels no control state is touched.
//
// Sqrt and Fmod are left nil; the sse2 entry serves them.
//
// Priority: 15 (preferred over the sse2 x87 rounding kernels)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Priority:  15,

		Trunc: Trunc,
		Floor: Floor,
		Ceil:  Ceil,
	})
}
