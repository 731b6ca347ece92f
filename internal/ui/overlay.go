//go:build ebiten

package ui

import (
	"image/color"

	"sandcastle/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the brush outline under the cursor and optional block lines
// on top of the world view.
type Overlay struct {
	editor   *sand.Editor
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs an overlay tracking the given editor.
func NewOverlay(editor *sand.Editor) *Overlay {
	o := &Overlay{editor: editor}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles block lines with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided view.
func (o *Overlay) Draw(view *ebiten.Image) {
	if o == nil || o.editor == nil {
		return
	}
	bs := o.editor.BlockSize()
	cam := o.editor.Camera()
	bounds := view.Bounds()

	if o.showGrid && bs >= 3 {
		line := color.RGBA{R: 0, G: 0, B: 0, A: 40}
		for x := cam.X % bs; x < bounds.Dx(); x += bs {
			o.fillRect(view, float64(x), 0, 1, float64(bounds.Dy()), line)
		}
		for y := cam.Y % bs; y < bounds.Dy(); y += bs {
			o.fillRect(view, 0, float64(y), float64(bounds.Dx()), 1, line)
		}
	}

	mx, my := ebiten.CursorPosition()
	if mx < bounds.Min.X || my < bounds.Min.Y || mx >= bounds.Max.X || my >= bounds.Max.Y {
		return
	}
	cx, cy := o.editor.CellAt(mx, my)
	r := o.editor.BrushRadius()
	x0 := float64((cx-r)*bs + cam.X)
	y0 := float64((cy-r)*bs + cam.Y)
	span := float64((2*r + 1) * bs)
	outline := o.editor.Tool().Color()
	o.fillRect(view, x0, y0, span, 1, outline)
	o.fillRect(view, x0, y0+span-1, span, 1, outline)
	o.fillRect(view, x0, y0, 1, span, outline)
	o.fillRect(view, x0+span-1, y0, 1, span, outline)
}

func (o *Overlay) fillRect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(o.pixel, op)
}
