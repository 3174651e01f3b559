// Package bitvec provides a fixed-length, byte-packed bit vector.
//
// A BitVector owns a contiguous byte buffer sized to hold a fixed number of
// bits and exposes single-bit reads and writes, bulk fills, in-place boolean
// algebra against another vector, and exact equality. The companion shape
// package maps N-dimensional coordinates onto the flat bit indices a
// BitVector accepts, and the grid package ties the two together.
//
// # Quick Start
//
//	bv, _ := bitvec.New(100)
//	bv.Set(shape.LinearIndex([]int{2, 2}, []int{1, 1})) // bit 3
//	fmt.Println(bv.Get(3)) // true
//
// # Layout
//
// Bit i lives at byte i/8, bit i%8, least-significant bit first within each
// byte regardless of platform byte order. The bit count rounds up to whole
// bytes; bits past the declared length are padding whose contents are
// unspecified after SetAll or Not. Equal compares storage bytes exactly,
// padding included.
//
// # Validation Modes
//
// Every vector carries a validation mode chosen at construction. ModeStrict
// (the default) checks indices and lifecycle state on every operation and
// reports violations through a pluggable handler, panicking by default.
// ModeFast skips all checks for maximum throughput; the caller guarantees
// correctness. Construction-time failures are returned as errors in both
// modes.
//
// A BitVector is not safe for concurrent use. Clone a vector to hand
// independent state to another goroutine.
package bitvec
