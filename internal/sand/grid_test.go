package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridBoundsExclusiveUpperEdge(t *testing.T) {
	g := NewGrid(4, 3)
	outside := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}, {-1, -1}, {100, 1}}
	for _, p := range outside {
		_, ok := g.Cell(p[0], p[1])
		require.False(t, ok, "(%d,%d) should hold no cell", p[0], p[1])
		require.False(t, g.SetCell(p[0], p[1], Cell{Kind: Gold}), "(%d,%d) write should be ignored", p[0], p[1])
	}
	require.Equal(t, 0, g.Count(Gold), "out-of-bounds writes must not land anywhere")

	inside := [][2]int{{0, 0}, {3, 0}, {0, 2}, {3, 2}, {1, 1}}
	for _, p := range inside {
		c, ok := g.Cell(p[0], p[1])
		require.True(t, ok, "(%d,%d) should be in bounds", p[0], p[1])
		require.Equal(t, Air, c.Kind, "fresh grid holds explicit Air")

		want := Cell{Kind: Water, Seek: SeekRight}
		require.True(t, g.SetCell(p[0], p[1], want))
		got, ok := g.Cell(p[0], p[1])
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestGridNonPositiveDimensionsClamp(t *testing.T) {
	g := NewGrid(0, -5)
	assert.Equal(t, 1, g.Size().W)
	assert.Equal(t, 1, g.Size().H)
}

func TestGridNeighbor(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetCell(1, 0, Cell{Kind: Sand})
	g.SetCell(1, 2, Cell{Kind: Dirt})
	g.SetCell(0, 1, Cell{Kind: Gold})
	g.SetCell(2, 1, Cell{Kind: Bedrock})

	cases := map[Side]Kind{Up: Sand, Down: Dirt, Left: Gold, Right: Bedrock}
	for side, want := range cases {
		c, ok := g.Neighbor(1, 1, side)
		require.True(t, ok)
		assert.Equal(t, want, c.Kind, "side %d", side)
	}

	_, ok := g.Neighbor(0, 0, Up)
	assert.False(t, ok)
	_, ok = g.Neighbor(0, 0, Left)
	assert.False(t, ok)
	_, ok = g.Neighbor(1, 1, Side(9))
	assert.False(t, ok)
}

func TestAdjacentSolidCountUsesOwnPosition(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetCell(3, 2, Cell{Kind: Dirt})
	g.SetCell(3, 4, Cell{Kind: Water})
	g.SetCell(2, 3, Cell{Kind: Sand})

	assert.Equal(t, 3, g.AdjacentSolidCount(3, 3))
	assert.Equal(t, 0, g.AdjacentSolidCount(0, 0), "origin has no solid neighbors")

	g.SetCell(4, 3, Cell{Kind: Bedrock})
	assert.Equal(t, 4, g.AdjacentSolidCount(3, 3))

	// Out-of-bounds neighbors are not counted as solid.
	g.SetCell(1, 0, Cell{Kind: Gold})
	assert.Equal(t, 1, g.AdjacentSolidCount(0, 0))
}

func TestCloneEmptyAndAdoptFrom(t *testing.T) {
	g := NewGrid(3, 2)
	g.SetCell(2, 1, Cell{Kind: Sand})

	empty := g.CloneEmpty()
	require.Equal(t, g.Size(), empty.Size())
	require.Equal(t, 6, empty.Count(Air))

	clone := g.Clone()
	require.True(t, clone.Equal(g))
	clone.SetCell(0, 0, Cell{Kind: Gold})
	require.False(t, clone.Equal(g), "clone must not share storage")

	require.True(t, g.AdoptFrom(clone))
	require.True(t, g.Equal(clone))
	c, _ := g.Cell(0, 0)
	require.Equal(t, Gold, c.Kind)

	require.False(t, g.AdoptFrom(NewGrid(2, 2)), "mismatched dimensions are rejected")
	require.False(t, g.AdoptFrom(nil))
	require.True(t, g.Equal(clone))
}

func TestFillAndCount(t *testing.T) {
	g := NewGrid(4, 4)
	g.Fill(Dirt)
	assert.Equal(t, 16, g.Count(Dirt))
	assert.Equal(t, 0, g.Count(Air))
}
