//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-libc/fpmath/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the arm64 kernels with the fpmath registry.
//
// FSQRTD and the FRINT family are part of the ARMv8 floating-point
// baseline; the rounding direction is encoded in the instruction, so no
// control state is touched. arm64 has no remainder instruction, so Fmod is
// left nil and the registry falls back to the generic kernel for it.
//
// Priority: 15 (preferred over generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		Sqrt:  Sqrt,
		Trunc: Trunc,
		Floor: Floor,
		Ceil:  Ceil,
	})
}
