//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-libc/fpmath/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the amd64 baseline kernels with the fpmath registry.
//
// Sqrt uses the SSE2 SQRTSD instruction. Fmod and the rounding kernels use
// x87 instructions (FPREM, FRNDINT), which are part of the amd64 baseline
// alongside SSE2; the set is registered at the SSE2 level, the registry's
// encoding of "any amd64 CPU".
//
// Priority: 10 (preferred over generic; the AVX rounding kernels outrank
// the x87 ones where available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		Sqrt:  Sqrt,
		Fmod:  Fmod,
		Trunc: Trunc,
		Floor: Floor,
		Ceil:  Ceil,
	})
}
