//go:build amd64 && !purego

package repmov

import (
	"github.com/cwbudde/algo-libc/mem/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the REP MOVS/STOS string-instruction kernels with the mem
// registry.
//
// These instructions are part of the x86-64 baseline, so the kernel set is
// registered at the SSE2 level (the registry's encoding of "any amd64 CPU").
//
// Compare is intentionally left nil: a linear byte scan has no profitable
// string-instruction form, so the registry falls back to the generic kernel
// for that operation.
//
// Priority: 10 (preferred over generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "repmov",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		CopyForward:  CopyForward,
		CopyBackward: CopyBackward,
		Fill:         Fill,
	})
}
