package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"valnoise/internal/core"
)

// ToImage quantizes r and paints it with palette.
func ToImage(r *core.Raster, palette Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.W, r.H))
	cells := make([]uint8, r.W*r.H)
	r.Quantize(cells)
	FillRGBA(img.Pix, cells, palette)
	return img
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
