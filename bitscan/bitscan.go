// Package bitscan provides find-first-set bit scans over unsigned
// integers.
package bitscan

// FirstSet32 returns the 1-based index of the lowest set bit in v, or 0
// when v is zero.
func FirstSet32(v uint32) int {
	if v == 0 {
		return 0
	}

	pos := 1
	if v&0xFFFF == 0 {
		pos += 16
		v >>= 16
	}
	if v&0xFF == 0 {
		pos += 8
		v >>= 8
	}
	if v&0xF == 0 {
		pos += 4
		v >>= 4
	}
	if v&0x3 == 0 {
		pos += 2
		v >>= 2
	}
	if v&0x1 == 0 {
		pos++
	}
	return pos
}

// FirstSet64 returns the 1-based index of the lowest set bit in v, or 0
// when v is zero. A set bit in the upper half scans as 32 plus its index
// within that half.
func FirstSet64(v uint64) int {
	if low := uint32(v); low != 0 {
		return FirstSet32(low)
	}
	if high := uint32(v >> 32); high != 0 {
		return 32 + FirstSet32(high)
	}
	return 0
}
