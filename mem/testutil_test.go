package mem

// Transfer sizes shared across test and benchmark files. Chosen to straddle
// the word size and alignment boundaries.
var testSizes = []int{0, 1, 2, 3, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1000, 4096}

// Benchmark sizes shared across all benchmark files
var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"64", 64},
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
	{"64K", 65536},
}

// fillPattern writes a deterministic non-repeating-ish byte pattern.
func fillPattern(p []byte, seed byte) {
	for i := range p {
		p[i] = byte(i)*31 + seed
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	s := ""
	for n > 0 {
		s = string(rune('0'+n%10)) + s
		n /= 10
	}
	return s
}

func sizeStr(n int) string {
	return "n=" + itoa(n)
}
