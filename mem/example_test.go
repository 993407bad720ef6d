package mem_test

import (
	"fmt"

	"github.com/cwbudde/algo-libc/mem"
)

func ExampleCopy() {
	dst := make([]byte, 5)
	mem.Copy(dst, []byte("hello"))
	fmt.Println(string(dst))
	// Output:
	// hello
}

func ExampleMove() {
	// Overlapping shift within one buffer: the destination starts above the
	// source, so the move copies backward and no source byte is clobbered
	// before it is read.
	buf := []byte("abcdef")
	mem.Move(buf[2:], buf[:4])
	fmt.Println(string(buf))
	// Output:
	// ababcd
}

func ExampleFill() {
	buf := make([]byte, 4)
	mem.Fill(buf, '*')
	fmt.Println(string(buf))
	// Output:
	// ****
}

func ExampleCompare() {
	fmt.Println(mem.Compare([]byte("abc"), []byte("abd")))
	fmt.Println(mem.Compare([]byte("abc"), []byte("abc")))
	// Output:
	// -1
	// 0
}
