package fpmath

import (
	"sync"

	"github.com/cwbudde/algo-libc/fpmath/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// kernelSet holds the function pointers selected for each dispatched
// operation (initialized once, used many times).
type kernelSet struct {
	sqrt  func(x float64) float64
	fmod  func(x, y float64) float64
	trunc func(x float64) float64
	floor func(x float64) float64
	ceil  func(x float64) float64

	// implementation name per operation, for diagnostics
	names map[string]string
}

var (
	kern     kernelSet
	kernOnce sync.Once
)

// initKernels performs one-time selection of the numeric kernels.
//
// Selection is per operation: accelerated entries may leave individual
// operations unset (the AVX rounding kernels carry no Sqrt or Fmod, arm64
// has no remainder instruction), in which case the next compatible entry
// serves that operation.
func initKernels() {
	features := cpu.DetectFeatures()
	kern.names = make(map[string]string, 5)

	pick := func(op string, want func(*registry.OpEntry) bool) *registry.OpEntry {
		entry := registry.Global.LookupWhere(features, want)
		if entry == nil {
			panic("fpmath: no " + op + " kernel registered (missing generic fallback?)")
		}
		kern.names[op] = entry.Name
		return entry
	}

	kern.sqrt = pick("sqrt", func(e *registry.OpEntry) bool { return e.Sqrt != nil }).Sqrt
	kern.fmod = pick("fmod", func(e *registry.OpEntry) bool { return e.Fmod != nil }).Fmod
	kern.trunc = pick("trunc", func(e *registry.OpEntry) bool { return e.Trunc != nil }).Trunc
	kern.floor = pick("floor", func(e *registry.OpEntry) bool { return e.Floor != nil }).Floor
	kern.ceil = pick("ceil", func(e *registry.OpEntry) bool { return e.Ceil != nil }).Ceil
}

// Kernels reports which kernel implementation serves each dispatched
// operation ("sqrt", "fmod", "trunc", "floor", "ceil"). Intended for
// diagnostics.
func Kernels() map[string]string {
	kernOnce.Do(initKernels)
	out := make(map[string]string, len(kern.names))
	for op, name := range kern.names {
		out[op] = name
	}
	return out
}
