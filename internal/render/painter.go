//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads palette-indexed cells into a single image, one pixel per
// cell, and draws it scaled to the block size.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for a grid of size w*h.
func NewPainter(w, h int) *Painter {
	p := &Painter{w: w, h: h, buf: make([]byte, 4*w*h)}
	p.img = ebiten.NewImage(w, h)
	return p
}

// Blit fills dst with sky, then draws the cells at the camera offset.
func (p *Painter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, blockSize int, camera image.Point, sky color.RGBA) {
	dst.Fill(sky)
	if len(cells) != p.w*p.h {
		return
	}
	fillPaletteRGBA(p.buf, cells, palette)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(blockSize), float64(blockSize))
	op.GeoM.Translate(float64(camera.X), float64(camera.Y))
	dst.DrawImage(p.img, op)
}
