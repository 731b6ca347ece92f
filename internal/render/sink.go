// Package render draws a committed grid as flat colored blocks.
package render

import (
	"image"
	"image/color"

	"sandcastle/internal/core"
)

// Source is the read side of a grid. ColorAt reports false for positions
// outside the grid.
type Source interface {
	Size() core.Size
	ColorAt(x, y int) (color.RGBA, bool)
}

// Sink receives one filled block per visible cell.
type Sink interface {
	FillBlock(r image.Rectangle, c color.RGBA)
}

// Viewport places the grid on screen. Screen is the visible area in pixels;
// when empty only the grid's own extent is drawn.
type Viewport struct {
	BlockSize int
	Camera    image.Point
	Sky       color.RGBA
	Screen    image.Point
}

// Draw fills every visible block of src into sink. Blocks that fall outside
// the grid are filled with the viewport's sky color.
func Draw(src Source, sink Sink, vp Viewport) {
	bs := vp.BlockSize
	if bs <= 0 {
		bs = 1
	}
	size := src.Size()
	x0, y0, x1, y1 := 0, 0, size.W, size.H
	if vp.Screen.X > 0 && vp.Screen.Y > 0 {
		x0 = core.FloorDiv(-vp.Camera.X, bs)
		y0 = core.FloorDiv(-vp.Camera.Y, bs)
		x1 = core.FloorDiv(vp.Screen.X-1-vp.Camera.X, bs) + 1
		y1 = core.FloorDiv(vp.Screen.Y-1-vp.Camera.Y, bs) + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c, ok := src.ColorAt(x, y)
			if !ok {
				c = vp.Sky
			}
			origin := image.Pt(x*bs+vp.Camera.X, y*bs+vp.Camera.Y)
			sink.FillBlock(image.Rectangle{Min: origin, Max: origin.Add(image.Pt(bs, bs))}, c)
		}
	}
}
