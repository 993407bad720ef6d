package generic

import (
	"bytes"
	"testing"
)

func pattern(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i*31 + 7)
	}
	return p
}

func TestCopyForward(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 17, 100} {
		src := pattern(n)
		dst := make([]byte, n)
		CopyForward(dst, src)
		if !bytes.Equal(dst, src) {
			t.Fatalf("n=%d: got %v, want %v", n, dst, src)
		}
	}
}

func TestCopyBackwardOverlapping(t *testing.T) {
	buf := pattern(24)
	want := append([]byte(nil), buf[:16]...)

	// dst above src inside one buffer; backward order keeps unread source
	// bytes intact.
	CopyBackward(buf[8:24], buf[0:16])
	if !bytes.Equal(buf[8:24], want) {
		t.Fatalf("got %v, want %v", buf[8:24], want)
	}
}

func TestFill(t *testing.T) {
	p := make([]byte, 33)
	Fill(p, 0xA5)
	for i, b := range p {
		if b != 0xA5 {
			t.Fatalf("byte %d = %#x, want 0xa5", i, b)
		}
	}
}

func TestCompare(t *testing.T) {
	if got := Compare([]byte{1, 2, 3}, []byte{1, 2, 3}); got != 0 {
		t.Fatalf("equal buffers: got %d", got)
	}
	if got := Compare([]byte{0xFF}, []byte{1}); got != 254 {
		t.Fatalf("unsigned difference: got %d, want 254", got)
	}
	if got := Compare([]byte{1, 2}, []byte{1, 2, 3}); got != 0 {
		t.Fatalf("min-length compare: got %d", got)
	}
}
