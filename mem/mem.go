package mem

import (
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-libc/mem/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// kernels holds the function pointers selected for each operation
// (initialized once, used many times).
type kernels struct {
	copyForward  func(dst, src []byte)
	copyBackward func(dst, src []byte)
	fill         func(p []byte, v byte)
	compare      func(a, b []byte) int

	// implementation name per operation, for diagnostics
	names map[string]string
}

var (
	kern     kernels
	kernOnce sync.Once
)

// initKernels performs one-time selection of the block-transfer kernels.
//
// Selection is per operation: accelerated entries may leave individual
// operations unset, in which case the next compatible entry (ultimately the
// generic fallback) serves that operation.
func initKernels() {
	features := cpu.DetectFeatures()
	kern.names = make(map[string]string, 4)

	pick := func(op string, want func(*registry.OpEntry) bool) *registry.OpEntry {
		entry := registry.Global.LookupWhere(features, want)
		if entry == nil {
			panic("mem: no " + op + " kernel registered (missing generic fallback?)")
		}
		kern.names[op] = entry.Name
		return entry
	}

	kern.copyForward = pick("copy", func(e *registry.OpEntry) bool { return e.CopyForward != nil }).CopyForward
	kern.copyBackward = pick("move", func(e *registry.OpEntry) bool { return e.CopyBackward != nil }).CopyBackward
	kern.fill = pick("fill", func(e *registry.OpEntry) bool { return e.Fill != nil }).Fill
	kern.compare = pick("compare", func(e *registry.OpEntry) bool { return e.Compare != nil }).Compare
}

// transferLen returns the number of bytes an operation over dst and src
// covers: the smaller of the two lengths.
func transferLen(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	return n
}

// Copy copies min(len(dst), len(src)) bytes from src to dst and returns dst.
//
// The ranges must not overlap; overlapping ranges are undefined behavior by
// contract and are not detected. Use Move when overlap is possible.
//
// When the range is at least one machine word long and both addresses share
// the same alignment residue, whole words are transferred with the
// architecture's bulk-move kernel and only the residual bytes individually;
// the result is identical to a byte-wise loop.
func Copy(dst, src []byte) []byte {
	n := transferLen(dst, src)
	if n == 0 {
		return dst
	}
	kernOnce.Do(initKernels)
	kern.copyForward(dst[:n], src[:n])
	return dst
}

// Move copies min(len(dst), len(src)) bytes from src to dst and returns dst.
// Overlapping ranges are permitted and handled correctly.
//
// The overlap predicate s < d+n && d < s+n is evaluated on the raw addresses
// before any byte is written. An overlapping destination above the source is
// copied backward, from the last byte down, so the write cursor never
// overruns unread source bytes; every other case copies forward. Identical
// ranges and empty ranges are no-ops.
func Move(dst, src []byte) []byte {
	n := transferLen(dst, src)
	if n == 0 {
		return dst
	}
	kernOnce.Do(initKernels)

	d := uintptr(unsafe.Pointer(unsafe.SliceData(dst)))
	s := uintptr(unsafe.Pointer(unsafe.SliceData(src)))
	if d == s {
		return dst
	}
	if s < d+uintptr(n) && d < s+uintptr(n) && d > s {
		kern.copyBackward(dst[:n], src[:n])
		return dst
	}
	kern.copyForward(dst[:n], src[:n])
	return dst
}

// Fill writes v into every byte of p and returns p.
func Fill(p []byte, v byte) []byte {
	if len(p) == 0 {
		return p
	}
	kernOnce.Do(initKernels)
	kern.fill(p, v)
	return p
}

// Compare compares min(len(a), len(b)) bytes of a and b as unsigned values.
// It returns 0 if all compared bytes are equal, otherwise the signed
// difference of the first differing byte pair (positive if a's byte is
// larger). The scan exits at the first mismatch.
func Compare(a, b []byte) int {
	kernOnce.Do(initKernels)
	return kern.compare(a, b)
}

// Kernels reports which kernel implementation serves each operation
// ("copy", "move", "fill", "compare"). Intended for diagnostics.
func Kernels() map[string]string {
	kernOnce.Do(initKernels)
	out := make(map[string]string, len(kern.names))
	for op, name := range kern.names {
		out[op] = name
	}
	return out
}
