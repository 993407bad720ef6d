//go:build amd64 && !purego

package repmov

import "unsafe"

const wordSize = 8

// CopyForward copies len(src) bytes from src to dst, front to back.
// The caller guarantees len(dst) >= len(src).
//
// When the two addresses share the same alignment residue, the bulk of the
// range is transferred as whole 8-byte words with REP MOVSQ: head bytes up
// to the word boundary, then words, then the residual n mod 8 bytes.
// Misaligned ranges fall through to REP MOVSB.
func CopyForward(dst, src []byte) {
	n := uintptr(len(src))
	if n == 0 {
		return
	}
	d := unsafe.Pointer(unsafe.SliceData(dst))
	s := unsafe.Pointer(unsafe.SliceData(src))

	if n >= wordSize && uintptr(d)&(wordSize-1) == uintptr(s)&(wordSize-1) {
		if head := (wordSize - uintptr(d)&(wordSize-1)) & (wordSize - 1); head > 0 {
			copyBytes(d, s, head)
			d = unsafe.Add(d, head)
			s = unsafe.Add(s, head)
			n -= head
		}
		copyWords(d, s, n/wordSize)
		if tail := n & (wordSize - 1); tail > 0 {
			off := n - tail
			copyBytes(unsafe.Add(d, off), unsafe.Add(s, off), tail)
		}
		return
	}

	copyBytes(d, s, n)
}

// CopyBackward copies len(src) bytes from src to dst starting at the last
// byte, so an overlapping destination above the source never overruns
// unread source bytes. Byte-granularity only; the backward direction is the
// rare overlap case and not worth a word path.
func CopyBackward(dst, src []byte) {
	n := uintptr(len(src))
	if n == 0 {
		return
	}
	d := unsafe.Pointer(unsafe.SliceData(dst))
	s := unsafe.Pointer(unsafe.SliceData(src))
	copyBytesBackward(d, s, n)
}

// Assembly kernels (implemented in copy.s)

//go:noescape
func copyWords(dst, src unsafe.Pointer, words uintptr)

//go:noescape
func copyBytes(dst, src unsafe.Pointer, n uintptr)

//go:noescape
func copyBytesBackward(dst, src unsafe.Pointer, n uintptr)
