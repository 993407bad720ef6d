package fpmath_test

import (
	"fmt"

	"github.com/cwbudde/algo-libc/fpmath"
)

func ExampleSqrt() {
	fmt.Println(fpmath.Sqrt(9))
	fmt.Println(fpmath.IsNaN(fpmath.Sqrt(-1)))
	// Output:
	// 3
	// true
}

func ExampleFmod() {
	fmt.Println(fpmath.Fmod(5.5, 2))
	fmt.Println(fpmath.Fmod(-5.5, 2))
	// Output:
	// 1.5
	// -1.5
}

func ExampleRound() {
	// Halfway cases round up, not to even.
	fmt.Println(fpmath.Round(2.5))
	fmt.Println(fpmath.Round(-2.5))
	// Output:
	// 3
	// -2
}

func ExampleFloor() {
	fmt.Println(fpmath.Floor(-1.2))
	fmt.Println(fpmath.Ceil(-1.2))
	fmt.Println(fpmath.Trunc(-1.2))
	// Output:
	// -2
	// -1
	// -1
}
