//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"valnoise/internal/core"
	"valnoise/internal/fields"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the view.
type HUD struct {
	view       fields.View
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     string
	title      string
}

// NewHUD constructs a HUD for the provided view and panel width.
func NewHUD(view fields.View, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{view: view, width: width, title: buildTitle(view)}
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetStatus replaces the footer line, e.g. the seed or the last export.
func (h *HUD) SetStatus(s string) {
	if h != nil {
		h.status = s
	}
}

// Update refreshes the cached parameter snapshot from the view.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.view.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.view.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines(height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines(height int) {
	face := basicfont.Face7x13
	titleColor := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor := color.RGBA{R: 160, G: 170, B: 200, A: 255}
	textColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	if len(h.snapshot.Groups) == 0 {
		text.Draw(h.panel, "No parameters", face, panelPadding, y+lineHeight, dimColor)
	}
	for _, group := range h.snapshot.Groups {
		y += groupSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		for _, p := range group.Params {
			y += lineHeight
			text.Draw(h.panel, p.Label, face, panelPadding, y, textColor)
			value := formatValue(p)
			bounds := text.BoundString(face, value)
			text.Draw(h.panel, value, face, h.width-panelPadding-bounds.Dx(), y, textColor)
		}
	}
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, height-panelPadding, dimColor)
	}
}

func buildTitle(view fields.View) string {
	if view == nil || view.Name() == "" {
		return "Parameters"
	}
	name := view.Name()
	return fmt.Sprintf("%s%s", strings.ToUpper(name[:1]), name[1:])
}

const (
	panelPadding   = 12
	lineHeight     = 18
	groupSpacing   = 28
	headerBaseline = 18
)
