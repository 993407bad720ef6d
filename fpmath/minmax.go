package fpmath

// Min returns the smaller of x and y. NaN-tolerant: if exactly one argument
// is NaN the other is returned; if both are NaN the result is NaN.
func Min(x, y float64) float64 {
	if IsNaN(x) {
		return y
	}
	if IsNaN(y) {
		return x
	}
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y. NaN-tolerant: if exactly one argument
// is NaN the other is returned; if both are NaN the result is NaN.
func Max(x, y float64) float64 {
	if IsNaN(x) {
		return y
	}
	if IsNaN(y) {
		return x
	}
	if x > y {
		return x
	}
	return y
}

// Min32 returns the smaller of x and y with the same NaN tolerance as Min.
func Min32(x, y float32) float32 {
	if x != x { // x is NaN
		return y
	}
	if y != y { // y is NaN
		return x
	}
	if x < y {
		return x
	}
	return y
}

// Max32 returns the larger of x and y with the same NaN tolerance as Max.
func Max32(x, y float32) float32 {
	if x != x { // x is NaN
		return y
	}
	if y != y { // y is NaN
		return x
	}
	if x > y {
		return x
	}
	return y
}
