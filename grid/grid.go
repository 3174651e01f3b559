// Package grid exposes a fixed-shape N-dimensional array of single-bit
// flags backed by a bitvec.BitVector, with coordinates mapped to bits in
// row-major order.
package grid

import (
	"strings"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/shape"
)

// Grid addresses a flat bit vector through N-dimensional coordinates. The
// last dimension varies fastest.
//
// Per-dimension bounds are the caller's responsibility: out-of-range
// coordinates that still flatten into the vector (e.g. [0 3] on a 2x2 grid)
// silently alias another cell, exactly as with a nested array walked through
// a flat pointer. Coordinates that flatten out of range follow the embedded
// vector's validation mode.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	shape shape.Shape
	bits  *bitvec.BitVector
}

// New allocates a zero-filled grid with the given extents. Every extent
// must be positive. Options are passed through to the underlying bit
// vector.
func New(dims []int, optFns ...bitvec.Option) (*Grid, error) {
	sh, err := shape.NewShape(dims...)
	if err != nil {
		return nil, err
	}

	bits, err := bitvec.New(sh.Size(), optFns...)
	if err != nil {
		return nil, err
	}

	return &Grid{shape: sh, bits: bits}, nil
}

// Dims returns the grid extents.
func (g *Grid) Dims() []int { return g.shape.Dims() }

// Len returns the total number of cells.
func (g *Grid) Len() int { return g.shape.Size() }

// Set sets the cell at the given coordinates, one per dimension.
func (g *Grid) Set(coords ...int) {
	g.bits.Set(g.shape.Index(coords...))
}

// Clear clears the cell at the given coordinates.
func (g *Grid) Clear(coords ...int) {
	g.bits.Clear(g.shape.Index(coords...))
}

// Flip inverts the cell at the given coordinates.
func (g *Grid) Flip(coords ...int) {
	g.bits.Flip(g.shape.Index(coords...))
}

// Get reports whether the cell at the given coordinates is set.
func (g *Grid) Get(coords ...int) bool {
	return g.bits.Get(g.shape.Index(coords...))
}

// SetAll sets every cell.
func (g *Grid) SetAll() { g.bits.SetAll() }

// ClearAll clears every cell.
func (g *Grid) ClearAll() { g.bits.ClearAll() }

// Count returns the number of set cells.
func (g *Grid) Count() int { return g.bits.Count() }

// BitVector returns the underlying vector for bulk operations. The vector
// is shared, not copied.
func (g *Grid) BitVector() *bitvec.BitVector { return g.bits }

// String renders the grid one line per run of the last dimension.
func (g *Grid) String() string {
	group := 0
	if n := g.shape.NumDims(); n > 0 {
		group = g.shape.Dims()[n-1]
	}

	var sb strings.Builder
	_ = g.bits.Dump(&sb, group)
	return sb.String()
}
