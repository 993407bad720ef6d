//go:build arm64 && !purego

package mem

// This file imports the arm64 kernel package to trigger its init()
// function, which registers the kernels with the global registry.

import (
	// Import registry package
	_ "github.com/cwbudde/algo-libc/mem/internal/arch/registry"

	// Generic kernels (pure Go fallback)
	_ "github.com/cwbudde/algo-libc/mem/internal/arch/generic"

	// ARM64 kernels
	_ "github.com/cwbudde/algo-libc/mem/internal/arch/arm64/bulk"
)
