// Package registry provides the implementation registry for mem kernels.
//
// The registry-based dispatch system allows multiple kernel variants
// (generic, repmov, bulk, etc.) to coexist. The best kernel for the current
// CPU is selected automatically at first use.
//
// Architecture-specific kernels register themselves via init() functions,
// and the mem package uses the registry to select the best kernel per
// operation based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry represents a registered kernel variant for mem operations.
//
// Each entry contains typed function pointers for the block-transfer
// operations at a specific SIMD level. Not all fields need to be populated -
// an operation left nil falls back to the next compatible entry.
type OpEntry struct {
	// Name is a human-readable identifier for this kernel set (e.g., "repmov", "generic").
	Name string

	// SIMDLevel indicates the instruction-set level required for this kernel set.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible kernels exist.
	// Higher priority kernels are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - amd64 baseline: 10
	//   - arm64 baseline: 15
	Priority int

	// CopyForward copies len(src) bytes from src to dst front to back.
	// The caller guarantees len(dst) >= len(src) and that a forward pass
	// never overruns unread source bytes.
	CopyForward func(dst, src []byte)

	// CopyBackward copies len(src) bytes from src to dst starting at the
	// last byte. Used for overlapping moves with dst above src.
	CopyBackward func(dst, src []byte)

	// Fill writes v into every byte of p.
	Fill func(p []byte, v byte)

	// Compare compares min(len(a), len(b)) bytes as unsigned values and
	// returns 0 or the signed difference of the first differing pair.
	Compare func(a, b []byte) int
}

// OpRegistry manages the registration and lookup of mem kernel variants.
//
// Kernels register themselves via init() functions. At first use, the mem
// frontend selects the highest-priority kernel compatible with the current
// CPU for each operation.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the mem package.
var Global = &OpRegistry{}

// Register adds a kernel variant to the registry.
//
// This function is typically called from init() functions in architecture-
// specific kernel packages. It is safe to call concurrently, but all
// registrations should complete before the first lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best kernel set for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. If no
// compatible kernels are found, returns nil (which should never happen if a
// generic fallback is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	return r.LookupWhere(features, func(*OpEntry) bool { return true })
}

// LookupWhere finds the best kernel set for the given CPU features among the
// entries for which want reports true.
//
// Accelerated entries may leave individual operations nil; the mem frontend
// uses LookupWhere with a per-operation predicate so each operation falls
// back independently to the next compatible entry.
func (r *OpRegistry) LookupWhere(features cpu.Features, want func(*OpEntry) bool) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) && want(entry) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, ~3 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
