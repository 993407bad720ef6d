package generic

import (
	"github.com/cwbudde/algo-libc/fpmath/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the generic (pure Go) kernels with the fpmath registry.
//
// Generic kernels serve as the baseline fallback when no hardware
// instruction is available or when ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest - used only when no accelerated alternatives exist)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Sqrt:  Sqrt,
		Fmod:  Fmod,
		Trunc: Trunc,
		Floor: Floor,
		Ceil:  Ceil,
	})
}
