package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// stop anchors a color at a sample value in [-1, 1].
type stop struct {
	at  float64
	hex string
}

var (
	terrainStops = []stop{
		{-1.0, "#0b2545"},
		{-0.25, "#1f6fb2"},
		{-0.05, "#d9c38c"},
		{0.15, "#4f8a3c"},
		{0.55, "#7a6a58"},
		{1.0, "#f4f4f4"},
	}
	cloudStops = []stop{
		{-1.0, "#3d6fb6"},
		{0.0, "#7fa8d9"},
		{0.35, "#d8e4f0"},
		{1.0, "#ffffff"},
	}
)

var paletteBuilders = map[string]func() (Palette, error){
	"gray":    func() (Palette, error) { return Grayscale(), nil },
	"terrain": func() (Palette, error) { return gradient(terrainStops) },
	"clouds":  func() (Palette, error) { return gradient(cloudStops) },
}

// Grayscale returns the palette where level l is the gray value l.
func Grayscale() Palette {
	p := make(Palette, 256)
	for i := range p {
		p[i] = color.RGBA{R: uint8(i), G: uint8(i), B: uint8(i), A: 255}
	}
	return p
}

// ByName returns one of the built-in palettes: gray, terrain or clouds.
func ByName(name string) (Palette, error) {
	build, ok := paletteBuilders[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (have %v)", name, PaletteNames())
	}
	return build()
}

// PaletteNames lists the built-in palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(paletteBuilders))
	for name := range paletteBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// gradient blends the stops in CIE Lab space into a 256-entry palette.
func gradient(stops []stop) (Palette, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("gradient needs at least two stops, got %d", len(stops))
	}
	cols := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s.hex)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		cols[i] = c
	}

	p := make(Palette, 256)
	seg := 0
	for level := range p {
		v := float64(level)/255*2 - 1
		for seg < len(stops)-2 && v > stops[seg+1].at {
			seg++
		}
		a, b := stops[seg], stops[seg+1]
		t := 0.0
		if span := b.at - a.at; span > 0 {
			t = (v - a.at) / span
		}
		t = clamp01(t)
		r, g, bl := cols[seg].BlendLab(cols[seg+1], t).Clamped().RGB255()
		p[level] = color.RGBA{R: r, G: g, B: bl, A: 255}
	}
	return p, nil
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
