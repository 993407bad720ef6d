// Package mem implements the block-transfer primitives of a freestanding
// standard-library replacement: copy, overlap-safe move, fill, and
// lexicographic compare over raw byte ranges.
//
// Every operation is stateless and reentrant: it acts only on the
// caller-supplied slices, allocates nothing, and runs to completion in time
// proportional to the range length. Concurrent callers are safe as long as
// the ranges they pass do not overlap; the package performs no locking and
// offers no atomicity.
//
// Each operation has an architecture-accelerated kernel and a portable pure
// Go fallback producing identical results. The kernel is selected once at
// first use based on detected CPU features; the purego build tag restricts
// the build to the portable kernels.
package mem
