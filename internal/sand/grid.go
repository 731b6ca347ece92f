package sand

import (
	"image/color"

	"sandcastle/internal/core"
)

// Side names one of the four cardinal neighbors.
type Side uint8

const (
	Up Side = iota
	Down
	Left
	Right
)

var sideOffsets = [...][2]int{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// Grid stores a fixed-size 2D array of cells in row-major order. Every
// in-bounds position always holds a cell; Air is an explicit value.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates a grid of Air with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *Grid) index(x, y int) int { return y*g.w + x }

// Cell returns the cell at (x, y). The boolean is false for out-of-bounds
// positions, which hold no cell.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[g.index(x, y)], true
}

// ColorAt returns the display color of the cell at (x, y).
func (g *Grid) ColorAt(x, y int) (color.RGBA, bool) {
	c, ok := g.Cell(x, y)
	if !ok {
		return color.RGBA{}, false
	}
	return c.Color(), true
}

// SetCell overwrites the cell at (x, y). Out-of-bounds writes are ignored and
// report false.
func (g *Grid) SetCell(x, y int, c Cell) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[g.index(x, y)] = c
	return true
}

// Neighbor returns the cell adjacent to (x, y) on the given side.
func (g *Grid) Neighbor(x, y int, side Side) (Cell, bool) {
	if int(side) >= len(sideOffsets) {
		return Cell{}, false
	}
	off := sideOffsets[side]
	return g.Cell(x+off[0], y+off[1])
}

// AdjacentSolidCount counts cardinal neighbors of (x, y) that exist and are
// not Air.
func (g *Grid) AdjacentSolidCount(x, y int) int {
	n := 0
	for side := range sideOffsets {
		if c, ok := g.Neighbor(x, y, Side(side)); ok && !c.Empty() {
			n++
		}
	}
	return n
}

// CloneEmpty returns a grid of the same dimensions filled with Air.
func (g *Grid) CloneEmpty() *Grid {
	return NewGrid(g.w, g.h)
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := g.CloneEmpty()
	copy(out.cells, g.cells)
	return out
}

// AdoptFrom replaces the contents of g with those of other, cell for cell.
// Grids of different dimensions are left untouched.
func (g *Grid) AdoptFrom(other *Grid) bool {
	if other == nil || other.w != g.w || other.h != g.h {
		return false
	}
	copy(g.cells, other.cells)
	return true
}

// Fill sets every cell to a fresh cell of kind k.
func (g *Grid) Fill(k Kind) {
	for i := range g.cells {
		g.cells[i] = Cell{Kind: k}
	}
}

// Count returns how many cells hold kind k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
