//go:build arm64 && !purego

package bulk

import "unsafe"

// Fill writes v into every byte of p.
//
// For ranges of at least one word the fill value is replicated across an
// 8-byte pattern and stored word-wise after aligning the start address:
// head bytes, whole words, residual bytes.
func Fill(p []byte, v byte) {
	n := uintptr(len(p))
	if n == 0 {
		return
	}
	ptr := unsafe.Pointer(unsafe.SliceData(p))

	if n >= wordSize {
		if head := (wordSize - uintptr(ptr)&(wordSize-1)) & (wordSize - 1); head > 0 {
			fillBytes(ptr, v, head)
			ptr = unsafe.Add(ptr, head)
			n -= head
		}
		pattern := uint64(v) * 0x0101010101010101
		fillWords(ptr, pattern, n/wordSize)
		if tail := n & (wordSize - 1); tail > 0 {
			fillBytes(unsafe.Add(ptr, n-tail), v, tail)
		}
		return
	}

	fillBytes(ptr, v, n)
}

// Assembly kernels (implemented in fill.s)

//go:noescape
func fillWords(p unsafe.Pointer, pattern uint64, words uintptr)

//go:noescape
func fillBytes(p unsafe.Pointer, v byte, n uintptr)
