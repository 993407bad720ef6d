//go:build purego || !(amd64 || arm64)

package fpmath

// This file imports the generic kernel package for purego builds and
// unsupported architectures.

import (
	// Import registry package
	_ "github.com/cwbudde/algo-libc/fpmath/internal/arch/registry"

	// Generic kernels (pure Go fallback)
	_ "github.com/cwbudde/algo-libc/fpmath/internal/arch/generic"
)
