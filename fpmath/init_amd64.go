//go:build amd64 && !purego

package fpmath

// This file imports the amd64 kernel packages to trigger their init()
// functions, which register the kernels with the global registry.

import (
	// Import registry package
	_ "github.com/cwbudde/algo-libc/fpmath/internal/arch/registry"

	// Generic kernels (pure Go fallback)
	_ "github.com/cwbudde/algo-libc/fpmath/internal/arch/generic"

	// AMD64 kernels
	_ "github.com/cwbudde/algo-libc/fpmath/internal/arch/amd64/avx"
	_ "github.com/cwbudde/algo-libc/fpmath/internal/arch/amd64/sse2"
)
