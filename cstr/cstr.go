// Package cstr provides C-style NUL-terminated string operations over byte
// slices.
//
// Read-side operations treat the end of the slice as a terminator, so they
// are total over any input: a slice without an explicit NUL behaves like a
// string terminated exactly at its last byte. Write-side operations
// (Copy, CopyN, Concat, ConcatN) require sufficient destination length and
// panic on overflow through the usual bounds checks, replacing the silent
// buffer overrun of their C counterparts.
package cstr

// at returns the byte at index i, with the slice end acting as the
// terminator.
func at(s []byte, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}

// Len returns the index of the first NUL byte in s, or len(s) when s
// contains none.
func Len(s []byte) int {
	for i, c := range s {
		if c == 0 {
			return i
		}
	}
	return len(s)
}

// Copy copies the string in src, including the terminating NUL, into dst
// and returns dst. dst must have length at least Len(src)+1.
func Copy(dst, src []byte) []byte {
	n := Len(src)
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
	dst[n] = 0
	return dst
}

// CopyN copies at most n bytes of the string in src into dst and returns
// dst. If the string is shorter than n, the remainder of the n bytes is
// zero-filled; if it is longer, the result is not NUL-terminated. dst must
// have length at least n.
func CopyN(dst, src []byte, n int) []byte {
	i := 0
	for ; i < n; i++ {
		c := at(src, i)
		dst[i] = c
		if c == 0 {
			i++
			break
		}
	}
	for ; i < n; i++ {
		dst[i] = 0
	}
	return dst
}

// Concat appends the string in src, including the terminating NUL, after
// the string in dst and returns dst. dst must have length at least
// Len(dst)+Len(src)+1.
func Concat(dst, src []byte) []byte {
	d := Len(dst)
	n := Len(src)
	for i := 0; i < n; i++ {
		dst[d+i] = src[i]
	}
	dst[d+n] = 0
	return dst
}

// ConcatN appends at most n bytes of the string in src after the string in
// dst, always writes a terminating NUL, and returns dst. dst must have
// length at least Len(dst)+min(n, Len(src))+1.
func ConcatN(dst, src []byte, n int) []byte {
	d := Len(dst)
	i := 0
	for ; i < n; i++ {
		c := at(src, i)
		if c == 0 {
			break
		}
		dst[d+i] = c
	}
	dst[d+i] = 0
	return dst
}

// Compare compares the strings in a and b byte-wise as unsigned values.
// The result is 0 if they are equal, otherwise the difference of the first
// differing byte pair (positive if a's byte is larger).
func Compare(a, b []byte) int {
	i := 0
	for at(a, i) != 0 && at(a, i) == at(b, i) {
		i++
	}
	return int(at(a, i)) - int(at(b, i))
}

// CompareN compares at most n bytes of the strings in a and b. A shared
// terminator inside the first n bytes ends the comparison as equal.
func CompareN(a, b []byte, n int) int {
	i := 0
	for i < n && at(a, i) != 0 && at(a, i) == at(b, i) {
		i++
	}
	if i == n {
		return 0
	}
	return int(at(a, i)) - int(at(b, i))
}

// IndexByte returns the index of the first occurrence of c in the string
// in s, or -1 if c does not occur before the terminator. The terminator
// itself is findable: IndexByte(s, 0) == Len(s).
func IndexByte(s []byte, c byte) int {
	n := Len(s)
	for i := 0; i < n; i++ {
		if s[i] == c {
			return i
		}
	}
	if c == 0 {
		return n
	}
	return -1
}

// LastIndexByte returns the index of the last occurrence of c in the
// string in s, or -1 if c does not occur. As with IndexByte the terminator
// is findable, so LastIndexByte(s, 0) == Len(s).
func LastIndexByte(s []byte, c byte) int {
	if c == 0 {
		return Len(s)
	}
	n := Len(s)
	for i := n - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}
