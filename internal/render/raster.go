package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
)

// Raster is a Sink backed by an in-memory RGBA image.
type Raster struct {
	img *image.RGBA
}

// NewRaster allocates a w*h pixel raster.
func NewRaster(w, h int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// FillBlock paints r, clipped to the raster bounds.
func (r *Raster) FillBlock(rect image.Rectangle, c color.RGBA) {
	draw.Draw(r.img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// EncodePNG writes the raster as a PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}
