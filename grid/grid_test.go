package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/shape"
	"github.com/hupe1980/bitvec/util"
)

func TestNew(t *testing.T) {
	t.Run("AllocatesProductBits", func(t *testing.T) {
		g, err := New([]int{4, 5})
		require.NoError(t, err)

		assert.Equal(t, 20, g.Len())
		assert.Equal(t, []int{4, 5}, g.Dims())
		assert.Equal(t, 0, g.Count())
	})

	t.Run("InvalidExtent", func(t *testing.T) {
		_, err := New([]int{4, -1})
		require.Error(t, err)

		var eid *shape.ErrInvalidDimension
		require.ErrorAs(t, err, &eid)
		assert.Equal(t, -1, eid.Dimension)
	})
}

func TestCells(t *testing.T) {
	t.Run("SetGetRoundTrip", func(t *testing.T) {
		g, err := New([]int{3, 4, 5})
		require.NoError(t, err)

		rng := util.NewRNG(7)
		for i := 0; i < 50; i++ {
			coords := rng.GenerateCoords(g.Dims())
			g.Set(coords...)
			assert.True(t, g.Get(coords...))
			g.Clear(coords...)
			assert.False(t, g.Get(coords...))
		}
	})

	t.Run("RowMajorLayout", func(t *testing.T) {
		g, err := New([]int{2, 2})
		require.NoError(t, err)

		// [1 1] is the last cell of a 2x2 grid in row-major order.
		g.Set(1, 1)
		assert.True(t, g.BitVector().Get(3))
	})

	t.Run("Flip", func(t *testing.T) {
		g, err := New([]int{2, 2})
		require.NoError(t, err)

		g.Flip(0, 1)
		assert.True(t, g.Get(0, 1))
		g.Flip(0, 1)
		assert.False(t, g.Get(0, 1))
	})

	t.Run("BulkFill", func(t *testing.T) {
		g, err := New([]int{3, 3})
		require.NoError(t, err)

		g.SetAll()
		assert.Equal(t, 9, g.Count())
		g.ClearAll()
		assert.Equal(t, 0, g.Count())
	})
}

func TestValidationPassThrough(t *testing.T) {
	var got error
	g, err := New([]int{2, 2}, bitvec.WithViolationHandler(func(err error) { got = err }))
	require.NoError(t, err)

	// [2 0] flattens to index 4, one past the last bit.
	g.Set(2, 0)
	require.ErrorIs(t, got, bitvec.ErrOutOfRange)
	assert.Equal(t, 0, g.Count())
}

func TestString(t *testing.T) {
	g, err := New([]int{2, 3})
	require.NoError(t, err)

	g.Set(0, 1)
	g.Set(1, 2)

	assert.Equal(t, "010\n001\n\n", g.String())
}
