// Package ctype provides ASCII character classification and case mapping
// over single bytes. Bytes outside the ASCII range classify as nothing and
// map to themselves.
package ctype

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlnum reports whether c is an ASCII letter or decimal digit.
func IsAlnum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsSpace reports whether c is ASCII whitespace (space, tab, newline,
// carriage return, vertical tab, or form feed).
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// IsUpper reports whether c is an uppercase ASCII letter.
func IsUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// IsLower reports whether c is a lowercase ASCII letter.
func IsLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// ToLower maps an uppercase ASCII letter to lowercase and returns every
// other byte unchanged.
func ToLower(c byte) byte {
	if IsUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

// ToUpper maps a lowercase ASCII letter to uppercase and returns every
// other byte unchanged.
func ToUpper(c byte) byte {
	if IsLower(c) {
		return c - ('a' - 'A')
	}
	return c
}
