package sand

import (
	"image"

	"sandcastle/internal/core"
)

// PanStep is how many pixels one camera nudge moves the view.
const PanStep = 4

// Editor turns pointer and hotkey input into cell writes against a grid.
type Editor struct {
	tool        Kind
	brushRadius int
	blockSize   int
	camera      image.Point
}

// NewEditor returns an editor placing Sand with a single-cell brush.
func NewEditor(blockSize int) *Editor {
	if blockSize <= 0 {
		blockSize = 1
	}
	return &Editor{tool: Sand, blockSize: blockSize}
}

// Tool returns the active material.
func (e *Editor) Tool() Kind { return e.tool }

// SetTool changes the active material. Unknown kinds are rejected.
func (e *Editor) SetTool(k Kind) bool {
	if !k.Valid() {
		return false
	}
	e.tool = k
	return true
}

// SelectHotkey selects the tool bound to a digit key (0 = Air, 1 = Sand,
// 2 = Bedrock, 3 = Dirt, 4 = Gold, 5 = Water).
func (e *Editor) SelectHotkey(digit int) bool {
	if digit < 0 || digit >= len(hotkeys) {
		return false
	}
	e.tool = hotkeys[digit]
	return true
}

// BrushRadius returns the paint radius in cells; zero paints a single cell.
func (e *Editor) BrushRadius() int { return e.brushRadius }

// SetBrushRadius sets the paint radius, clamping negatives to zero.
func (e *Editor) SetBrushRadius(r int) {
	if r < 0 {
		r = 0
	}
	e.brushRadius = r
}

// BlockSize returns the on-screen size of one cell in pixels.
func (e *Editor) BlockSize() int { return e.blockSize }

// Camera returns the pixel offset applied when drawing the grid.
func (e *Editor) Camera() image.Point { return e.camera }

// Pan moves the camera by the given pixel deltas.
func (e *Editor) Pan(dx, dy int) {
	e.camera = e.camera.Add(image.Pt(dx, dy))
}

// CellAt converts a pointer position in pixels to grid coordinates.
func (e *Editor) CellAt(px, py int) (int, int) {
	return core.FloorDiv(px-e.camera.X, e.blockSize), core.FloorDiv(py-e.camera.Y, e.blockSize)
}

// Paint writes fresh cells of the active tool over the brush disc centered at
// (x, y) and returns how many cells were written.
func (e *Editor) Paint(g *Grid, x, y int, rng *core.RNG) int {
	r := e.brushRadius
	r2 := r * r
	written := 0
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			c, err := NewCell(e.tool, rng)
			if err != nil {
				return written
			}
			if g.SetCell(x+dx, y+dy, c) {
				written++
			}
		}
	}
	return written
}

// PaintPixel paints at the cell under the pointer position (px, py).
func (e *Editor) PaintPixel(g *Grid, px, py int, rng *core.RNG) int {
	x, y := e.CellAt(px, py)
	return e.Paint(g, x, y, rng)
}
