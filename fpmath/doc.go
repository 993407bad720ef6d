// Package fpmath implements the floating-point primitives of a freestanding
// standard-library replacement: absolute value, sign manipulation,
// classification, rounding, square root, and floating remainder, with
// bit-exact IEEE-754 semantics and no dependency on a hosted math library.
//
// Sign and classification operations act on the value's bit pattern (sign,
// biased exponent, mantissa) through explicit width-preserving
// reinterpretation, never through arithmetic comparisons that could mishandle
// signed zero or NaN payloads.
//
// The rounding, square-root, and remainder operations dispatch to a
// hardware-instruction kernel when the CPU provides one, with a portable pure
// Go kernel as the fallback; both paths are exercised by the same test suite.
// The purego build tag restricts the build to the portable kernels.
//
// Exceptional operands are signaled purely through IEEE-754 result encoding
// (NaN); no operation returns an error.
package fpmath
