//go:build ebiten

package ui

import (
	"image/color"

	"valnoise/internal/core"
	"valnoise/internal/fields"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the integer lattice of the noise field on top of the view.
// G toggles it.
type Overlay struct {
	view  fields.View
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(view fields.View, scale int) *Overlay {
	o := &Overlay{view: view, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the lattice onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.view.(core.ParameterProvider)
	if !ok {
		return
	}
	freq, ox, oy, ok := latticeFrame(provider.Parameters())
	if !ok {
		return
	}
	size := o.view.Size()
	scale := float64(o.scale)
	if scale <= 0 {
		scale = 1
	}
	w := float64(size.W) * scale
	h := float64(size.H) * scale
	col := color.RGBA{R: 255, G: 64, B: 64, A: 160}
	for _, x := range LatticeLines(size.W, freq, ox) {
		o.drawRect(screen, x*scale, 0, 1, h, col)
	}
	for _, y := range LatticeLines(size.H, freq, oy) {
		o.drawRect(screen, 0, y*scale, w, 1, col)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
