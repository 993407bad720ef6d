package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func ident(x float64) float64 { return x }

func TestLookupPriorityOrder(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Trunc: ident})
	r.Register(OpEntry{Name: "fast", SIMDLevel: cpu.SIMDSSE2, Priority: 10, Trunc: ident})

	got := r.Lookup(cpu.Features{HasSSE2: true, Architecture: "amd64"})
	if got == nil || got.Name != "fast" {
		t.Fatalf("expected fast kernel, got %+v", got)
	}

	got = r.Lookup(cpu.Features{ForceGeneric: true})
	if got == nil || got.Name != "generic" {
		t.Fatalf("expected generic kernel under ForceGeneric, got %+v", got)
	}
}

func TestLookupWherePerOpFallback(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Trunc: ident, Sqrt: ident})
	// Accelerated entry without Sqrt: sqrt lookups must skip it.
	r.Register(OpEntry{Name: "round-only", SIMDLevel: cpu.SIMDSSE2, Priority: 10, Trunc: ident})

	features := cpu.Features{HasSSE2: true, Architecture: "amd64"}

	got := r.LookupWhere(features, func(e *OpEntry) bool { return e.Trunc != nil })
	if got == nil || got.Name != "round-only" {
		t.Fatalf("trunc lookup: expected round-only, got %+v", got)
	}

	got = r.LookupWhere(features, func(e *OpEntry) bool { return e.Sqrt != nil })
	if got == nil || got.Name != "generic" {
		t.Fatalf("sqrt lookup: expected generic fallback, got %+v", got)
	}
}

func TestLookupNoMatch(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "avx-only", SIMDLevel: cpu.SIMDAVX, Priority: 15, Trunc: ident})

	if got := r.Lookup(cpu.Features{ForceGeneric: true}); got != nil {
		t.Fatalf("expected nil for incompatible registry, got %+v", got)
	}
}

func TestListEntriesSorted(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "low", Priority: 0})
	r.Register(OpEntry{Name: "high", Priority: 15})
	r.Register(OpEntry{Name: "mid", Priority: 10})

	entries := r.ListEntries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Priority < entries[i].Priority {
			t.Fatalf("entries not sorted descending: %v", entries)
		}
	}

	r.Reset()
	if got := r.ListEntries(); len(got) != 0 {
		t.Fatalf("expected empty registry after Reset, got %d entries", len(got))
	}
}
