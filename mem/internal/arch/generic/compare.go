package generic

// Compare compares min(len(a), len(b)) bytes of a and b as unsigned values.
// Returns 0 if all compared bytes are equal, otherwise the signed difference
// of the first differing byte pair (positive if a's byte is larger).
// Early exit on the first mismatch.
func Compare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}
