package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetClearAt(t *testing.T) {
	g := MakeGrid(StandardRows, StandardCols)
	require.NoError(t, g.Set(10, 3, 'Q', false))
	assert.True(t, g.IsOccupied(10, 3))

	cell, err := g.At(10, 3)
	require.NoError(t, err)
	assert.Equal(t, 'Q', cell.Letter)
	assert.False(t, cell.Wildcard)
	assert.NotZero(t, cell.ID)

	require.NoError(t, g.Clear(10, 3))
	assert.False(t, g.IsOccupied(10, 3))
}

func TestOutOfBounds(t *testing.T) {
	g := MakeGrid(StandardRows, StandardCols)
	assert.ErrorIs(t, g.Set(-1, 0, 'A', false), ErrOutOfBounds)
	assert.ErrorIs(t, g.Set(0, StandardCols, 'A', false), ErrOutOfBounds)
	assert.ErrorIs(t, g.Clear(StandardRows, 0), ErrOutOfBounds)
	_, err := g.At(0, -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestIsOccupiedOutOfBounds(t *testing.T) {
	g := MakeGrid(StandardRows, StandardCols)
	require.NoError(t, g.Set(0, 0, 'A', false))
	assert.False(t, g.IsOccupied(-1, 0))
	assert.False(t, g.IsOccupied(0, -1))
	assert.False(t, g.IsOccupied(StandardRows, 0))
	assert.False(t, g.IsOccupied(0, StandardCols))
}

func TestPlacementIDsDistinct(t *testing.T) {
	g := MakeGrid(4, 4)
	require.NoError(t, g.Set(0, 0, 'A', false))
	require.NoError(t, g.Set(0, 1, 'A', false))
	a, _ := g.At(0, 0)
	b, _ := g.At(0, 1)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestApplyGravity(t *testing.T) {
	g, err := ParseRows([]string{
		"A..C",
		"....",
		"B...",
		"....",
	})
	require.NoError(t, err)

	moved := g.ApplyGravity()
	assert.Equal(t, 3, moved)
	assert.Equal(t, "....\n....\nA...\nB..C", g.String())

	// Column order preserved: A was above B and stays above it.
	top, _ := g.At(2, 0)
	bottom, _ := g.At(3, 0)
	assert.Equal(t, 'A', top.Letter)
	assert.Equal(t, 'B', bottom.Letter)
}

func TestGravityIdempotent(t *testing.T) {
	g, err := ParseRows([]string{
		"....",
		"..B.",
		"A.B.",
		"ACBD",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, g.ApplyGravity(), "compacted grid must not move")
}

func TestSnapshotIsACopy(t *testing.T) {
	g := MakeGrid(3, 3)
	require.NoError(t, g.Set(1, 1, 'X', false))
	snap := g.Snapshot()
	snap[1][1] = Cell{}
	assert.True(t, g.IsOccupied(1, 1))
}

func TestHasAdjacent(t *testing.T) {
	g, err := ParseRows([]string{
		"....",
		".A..",
		"....",
	})
	require.NoError(t, err)
	assert.True(t, g.HasAdjacent(0, 1))
	assert.True(t, g.HasAdjacent(1, 0))
	assert.True(t, g.HasAdjacent(1, 2))
	assert.True(t, g.HasAdjacent(2, 1))
	assert.False(t, g.HasAdjacent(0, 0))
	assert.False(t, g.HasAdjacent(2, 3))
	// Diagonals do not count.
	assert.False(t, g.HasAdjacent(0, 2))
}

func TestTopRowsCrowded(t *testing.T) {
	g := MakeGrid(StandardRows, StandardCols)
	assert.False(t, g.TopRowsCrowded(4))
	require.NoError(t, g.Set(5, 0, 'A', false))
	assert.False(t, g.TopRowsCrowded(4))
	require.NoError(t, g.Set(3, 7, 'B', false))
	assert.True(t, g.TopRowsCrowded(4))
}

func TestSwap(t *testing.T) {
	g, err := ParseRows([]string{
		"A.",
		".b",
	})
	require.NoError(t, err)
	require.NoError(t, g.Swap(Pos{0, 0}, Pos{1, 1}))

	a, _ := g.At(1, 1)
	b, _ := g.At(0, 0)
	assert.Equal(t, 'A', a.Letter)
	assert.Equal(t, 'B', b.Letter)
	assert.True(t, b.Wildcard)

	assert.ErrorIs(t, g.Swap(Pos{0, 0}, Pos{5, 5}), ErrOutOfBounds)
}

func TestParseRowsRejectsBadLayouts(t *testing.T) {
	_, err := ParseRows([]string{"AB", "A"})
	assert.ErrorIs(t, err, ErrBadLayout)
	_, err = ParseRows(nil)
	assert.ErrorIs(t, err, ErrBadLayout)
}

func TestStringRoundTrip(t *testing.T) {
	rows := []string{
		"........",
		"...e....",
		"..CAT...",
	}
	g, err := ParseRows(rows)
	require.NoError(t, err)
	assert.Equal(t, "........\n...e....\n..CAT...", g.String())
}
