package generic

// Fill writes v into every byte of p.
// This is the pure Go fallback kernel.
func Fill(p []byte, v byte) {
	for i := range p {
		p[i] = v
	}
}
