//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"valnoise/internal/core"
)

// GridPainter uploads a quantized raster into a single ebiten image.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	cells []uint8
	buf   []byte
}

// NewGridPainter allocates a painter for a raster of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, cells: make([]uint8, w*h), buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit paints r with palette and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, r *core.Raster, palette Palette, scale int) {
	if r == nil || r.W != gp.w || r.H != gp.h {
		return
	}
	r.Quantize(gp.cells)
	FillRGBA(gp.buf, gp.cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
