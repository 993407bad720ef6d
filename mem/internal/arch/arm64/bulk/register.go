//go:build arm64 && !purego

package bulk

import (
	"github.com/cwbudde/algo-libc/mem/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the LDP/STP pairwise kernels with the mem registry.
//
// Pairwise loads and stores are part of the arm64 baseline; the kernel set
// is registered at the NEON level, which every ARMv8 CPU reports.
//
// Compare is intentionally left nil: the registry falls back to the generic
// byte scan for that operation.
//
// Priority: 15 (preferred over generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "bulk",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		CopyForward:  CopyForward,
		CopyBackward: CopyBackward,
		Fill:         Fill,
	})
}
