//go:build purego || !(amd64 || arm64)

package mem

// This file imports the generic kernel package for purego builds and
// unsupported architectures.

import (
	// Import registry package
	_ "github.com/cwbudde/algo-libc/mem/internal/arch/registry"

	// Generic kernels (pure Go fallback)
	_ "github.com/cwbudde/algo-libc/mem/internal/arch/generic"
)
