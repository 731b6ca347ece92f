package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindAt(t *testing.T, g *Grid, x, y int) Kind {
	t.Helper()
	c, ok := g.Cell(x, y)
	require.True(t, ok, "(%d,%d) out of bounds", x, y)
	return c.Kind
}

func TestStepAirOnlyIsNoop(t *testing.T) {
	g := NewGrid(8, 6)
	next := Step(g)
	require.True(t, next.Equal(g))
	require.NotSame(t, g, next)
}

func TestSandFallsIntoAir(t *testing.T) {
	g := NewGrid(1, 2)
	g.SetCell(0, 0, Cell{Kind: Sand})

	next := Step(g)
	assert.Equal(t, Air, kindAt(t, next, 0, 0))
	assert.Equal(t, Sand, kindAt(t, next, 0, 1))
	assert.Equal(t, Sand, kindAt(t, g, 0, 0), "old grid is only read")
}

func TestSandBlocked(t *testing.T) {
	g := NewGrid(1, 2)
	g.SetCell(0, 0, Cell{Kind: Sand})
	g.SetCell(0, 1, Cell{Kind: Bedrock})

	next := Step(g)
	require.True(t, next.Equal(g))
}

func TestSandRestsOnBottomEdge(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetCell(1, 1, Cell{Kind: Sand})

	next := Step(g)
	assert.Equal(t, Sand, kindAt(t, next, 1, 1))
	assert.Equal(t, 1, next.Count(Sand))
}

func TestSandDoesNotSlideIntoWater(t *testing.T) {
	g := NewGrid(1, 3)
	g.SetCell(0, 0, Cell{Kind: Sand})
	g.SetCell(0, 1, Cell{Kind: Water})
	g.SetCell(0, 2, Cell{Kind: Bedrock})

	next := Step(g)
	assert.Equal(t, Sand, kindAt(t, next, 0, 0))
	assert.Equal(t, Water, kindAt(t, next, 0, 1))
}

func TestStaticMaterialsPersist(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetCell(1, 0, Cell{Kind: Dirt})
	g.SetCell(3, 1, Cell{Kind: Gold})
	g.SetCell(2, 2, Cell{Kind: Bedrock})
	for x := 0; x < 5; x++ {
		g.SetCell(x, 4, Cell{Kind: Bedrock})
	}
	initial := g.Clone()

	for i := 0; i < 50; i++ {
		g.AdoptFrom(Step(g))
	}
	require.True(t, g.Equal(initial), "floating dirt, gold and bedrock must never move")
}

func TestWaterFallsStraightDownFirst(t *testing.T) {
	g := NewGrid(10, 10)
	g.SetCell(5, 5, Cell{Kind: Water})

	next := Step(g)
	assert.Equal(t, 1, next.Count(Water))
	assert.Equal(t, Water, kindAt(t, next, 5, 6))
	assert.Equal(t, Air, kindAt(t, next, 5, 5), "vacated in-range cell is Air")
}

func TestWaterDiagonalFollowsSeek(t *testing.T) {
	cases := []struct {
		name  string
		seek  Direction
		wantX int
	}{
		{"seek left", SeekLeft, 4},
		{"seek right", SeekRight, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(10, 10)
			g.SetCell(5, 5, Cell{Kind: Water, Seek: tc.seek})
			g.SetCell(5, 6, Cell{Kind: Bedrock})

			next := Step(g)
			require.Equal(t, 1, next.Count(Water))
			require.Equal(t, Air, kindAt(t, next, 5, 5))
			c, _ := next.Cell(tc.wantX, 6)
			assert.Equal(t, Water, c.Kind)
			assert.Equal(t, tc.seek, c.Seek, "a diagonal move keeps the seek direction")
		})
	}
}

func TestWaterTakesOtherDiagonalWhenSeekSideBlocked(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetCell(1, 1, Cell{Kind: Water, Seek: SeekRight})
	g.SetCell(1, 2, Cell{Kind: Bedrock})
	g.SetCell(2, 2, Cell{Kind: Bedrock})

	next := Step(g)
	c, _ := next.Cell(0, 2)
	assert.Equal(t, Water, c.Kind)
	assert.Equal(t, SeekRight, c.Seek)
}

func TestWaterMovesSidewaysAlongSeek(t *testing.T) {
	g := NewGrid(3, 2)
	for x := 0; x < 3; x++ {
		g.SetCell(x, 1, Cell{Kind: Bedrock})
	}
	g.SetCell(1, 0, Cell{Kind: Water, Seek: SeekRight})

	next := Step(g)
	c, _ := next.Cell(2, 0)
	assert.Equal(t, Water, c.Kind)
	assert.Equal(t, SeekRight, c.Seek, "a successful move keeps the seek direction")

	g.SetCell(1, 0, Cell{Kind: Water, Seek: SeekLeft})
	next = Step(g)
	assert.Equal(t, Water, kindAt(t, next, 0, 0))
}

func TestWaterFlipsSeekWhenBlocked(t *testing.T) {
	g := NewGrid(1, 2)
	g.SetCell(0, 0, Cell{Kind: Water, Seek: SeekLeft})
	g.SetCell(0, 1, Cell{Kind: Bedrock})

	next := Step(g)
	c, _ := next.Cell(0, 0)
	require.Equal(t, Water, c.Kind)
	require.Equal(t, SeekRight, c.Seek)

	next = Step(next)
	c, _ = next.Cell(0, 0)
	require.Equal(t, SeekLeft, c.Seek)
}

func TestLastWriteWinsDropsEarlierCell(t *testing.T) {
	// Sand at (1,0) falls into (1,1); water at (0,1) is processed later in
	// row-major order, is blocked below and diagonally, and slides right into
	// the same (1,1), overwriting the sand.
	g := NewGrid(3, 3)
	for x := 0; x < 3; x++ {
		g.SetCell(x, 2, Cell{Kind: Bedrock})
	}
	g.SetCell(1, 0, Cell{Kind: Sand})
	g.SetCell(0, 1, Cell{Kind: Water, Seek: SeekRight})

	next := Step(g)
	assert.Equal(t, Water, kindAt(t, next, 1, 1))
	assert.Equal(t, 0, next.Count(Sand), "sand is lost to the later write")
	assert.Equal(t, Air, kindAt(t, next, 1, 0))
	assert.Equal(t, Air, kindAt(t, next, 0, 1))
	assert.Equal(t, 3, next.Count(Bedrock))
}

func TestStepDeterministic(t *testing.T) {
	build := func() *Grid {
		g := NewGrid(16, 12)
		for x := 0; x < 16; x++ {
			g.SetCell(x, 11, Cell{Kind: Bedrock})
			g.SetCell(x, 0, Cell{Kind: Water, Seek: Direction(x % 2)})
			g.SetCell(x, 2, Cell{Kind: Sand})
		}
		return g
	}
	a, b := build(), build()
	for i := 0; i < 40; i++ {
		a.AdoptFrom(Step(a))
		b.AdoptFrom(Step(b))
		require.True(t, a.Equal(b), "diverged at step %d", i)
	}
}

func TestSandColumnSettles(t *testing.T) {
	g := NewGrid(1, 5)
	g.SetCell(0, 0, Cell{Kind: Sand})
	g.SetCell(0, 1, Cell{Kind: Sand})

	for i := 0; i < 10; i++ {
		g.AdoptFrom(Step(g))
	}
	assert.Equal(t, 2, g.Count(Sand))
	assert.Equal(t, Sand, kindAt(t, g, 0, 4))
	assert.Equal(t, Sand, kindAt(t, g, 0, 3))
}
