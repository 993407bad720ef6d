// Package intmath provides integer absolute value in the classic
// compare-and-negate form. In two's complement the minimum value of each
// width has no positive counterpart and maps to itself.
package intmath

// Abs returns the absolute value of x. Abs(math.MinInt) returns
// math.MinInt.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Abs32 returns the absolute value of x. Abs32(math.MinInt32) returns
// math.MinInt32.
func Abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// Abs64 returns the absolute value of x. Abs64(math.MinInt64) returns
// math.MinInt64.
func Abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
