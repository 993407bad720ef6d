//go:build amd64 && !purego

package repmov

import "unsafe"

// Fill writes v into every byte of p using REP STOSB, the hardware
// bulk-store instruction. STOSB has no alignment requirement, so no
// head/tail split is needed.
func Fill(p []byte, v byte) {
	n := uintptr(len(p))
	if n == 0 {
		return
	}
	fillBytes(unsafe.Pointer(unsafe.SliceData(p)), v, n)
}

// Assembly kernel (implemented in fill.s)

//go:noescape
func fillBytes(p unsafe.Pointer, v byte, n uintptr)
