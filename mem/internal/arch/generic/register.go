package generic

import (
	"github.com/cwbudde/algo-libc/mem/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the generic (pure Go) kernels with the mem registry.
//
// Generic kernels serve as the baseline fallback when no accelerated
// kernels are available or when ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest - used only when no accelerated alternatives exist)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		CopyForward:  CopyForward,
		CopyBackward: CopyBackward,
		Fill:         Fill,
		Compare:      Compare,
	})
}
