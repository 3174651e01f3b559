package bitvec_test

import (
	"fmt"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/shape"
)

// ExampleBitVector demonstrates single-bit operations and the debug dump.
func ExampleBitVector() {
	bv, err := bitvec.New(16)
	if err != nil {
		panic(err)
	}
	defer bv.Release()

	bv.Set(3)
	bv.Set(12)

	fmt.Print(bv.String())
	// Output:
	// 00010000
	// 00001000
}

// ExampleBitVector_Or shows the truncating boolean contract: only the bytes
// covered by the shorter operand are combined.
func ExampleBitVector_Or() {
	dest, _ := bitvec.New(16)
	src, _ := bitvec.New(8)

	src.SetAll()
	dest.Or(src)

	fmt.Println(dest.Count())
	// Output: 8
}

// Example_linearIndex addresses a flat bit vector as a 2x2 grid.
func Example_linearIndex() {
	bv, _ := bitvec.New(100)

	idx := shape.LinearIndex([]int{2, 2}, []int{1, 1})
	bv.Set(idx)

	fmt.Println(idx, bv.Get(3))
	// Output: 3 true
}

// ExampleBitVector_Clone copies a vector into independent storage.
func ExampleBitVector_Clone() {
	bv, _ := bitvec.New(8)
	bv.Set(0)

	clone := bv.Clone()
	clone.Flip(0)

	fmt.Println(bv.Get(0), clone.Get(0))
	// Output: true false
}
