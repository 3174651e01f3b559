// Package shape converts between row-major linear indices and
// multi-dimensional coordinates, so flat bit stores can be addressed as if
// they were higher-dimensional arrays.
package shape

import "fmt"

// LinearIndex folds per-dimension coordinates into a single row-major linear
// index: the last dimension varies fastest, mirroring a nested array layout
// where the rightmost index is contiguous.
//
// dims and indices must have the same length and every indices[i] must lie
// in [0, dims[i]); neither is validated here — bounds are the caller's
// responsibility.
func LinearIndex(dims, indices []int) int {
	index := 0
	multiplier := 1
	for i := len(dims) - 1; i >= 0; i-- {
		index += indices[i] * multiplier
		multiplier *= dims[i]
	}
	return index
}

// InverseLinearIndex recovers the per-dimension coordinates for a row-major
// linear index. It is the exact inverse of LinearIndex for any index in
// [0, product(dims)); an out-of-range index wraps via modulo arithmetic
// rather than failing.
func InverseLinearIndex(dims []int, index int) []int {
	indices := make([]int, len(dims))
	InverseLinearIndexInto(dims, index, indices)
	return indices
}

// InverseLinearIndexInto is InverseLinearIndex writing into caller-supplied
// storage. out must have the same length as dims.
func InverseLinearIndexInto(dims []int, index int, out []int) {
	for d := len(dims) - 1; d >= 0; d-- {
		out[d] = index % dims[d]
		index /= dims[d]
	}
}

// ErrInvalidDimension indicates a non-positive dimension extent.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// Shape is a validated, immutable sequence of dimension extents with a
// precomputed total size.
type Shape struct {
	dims []int
	size int
}

// NewShape validates that every extent is positive and returns the shape.
// A shape with no dimensions is legal and has size 1.
func NewShape(dims ...int) (Shape, error) {
	size := 1
	for _, d := range dims {
		if d <= 0 {
			return Shape{}, &ErrInvalidDimension{Dimension: d}
		}
		size *= d
	}

	owned := make([]int, len(dims))
	copy(owned, dims)

	return Shape{dims: owned, size: size}, nil
}

// NumDims returns the number of dimensions.
func (s Shape) NumDims() int { return len(s.dims) }

// Dims returns a copy of the extents.
func (s Shape) Dims() []int {
	out := make([]int, len(s.dims))
	copy(out, s.dims)
	return out
}

// Size returns the product of all extents.
func (s Shape) Size() int { return s.size }

// Index is LinearIndex over the shape's extents.
func (s Shape) Index(indices ...int) int {
	return LinearIndex(s.dims, indices)
}

// Coords is InverseLinearIndex over the shape's extents.
func (s Shape) Coords(index int) []int {
	return InverseLinearIndex(s.dims, index)
}
