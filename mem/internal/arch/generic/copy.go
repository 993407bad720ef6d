package generic

// CopyForward copies len(src) bytes from src to dst, front to back.
// The caller guarantees len(dst) >= len(src).
// This is the pure Go fallback kernel.
func CopyForward(dst, src []byte) {
	for i := 0; i < len(src); i++ {
		dst[i] = src[i]
	}
}

// CopyBackward copies len(src) bytes from src to dst, starting at the last
// byte and decrementing, so an overlapping destination above the source
// never overruns unread source bytes.
// This is the pure Go fallback kernel.
func CopyBackward(dst, src []byte) {
	for i := len(src) - 1; i >= 0; i-- {
		dst[i] = src[i]
	}
}
