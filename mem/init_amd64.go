//go:build amd64 && !purego

package mem

// This file imports the amd64 kernel package to trigger its init()
// function, which registers the kernels with the global registry.

import (
	// Import registry package
	_ "github.com/cwbudde/algo-libc/mem/internal/arch/registry"

	// Generic kernels (pure Go fallback)
	_ "github.com/cwbudde/algo-libc/mem/internal/arch/generic"

	// AMD64 kernels
	_ "github.com/cwbudde/algo-libc/mem/internal/arch/amd64/repmov"
)
