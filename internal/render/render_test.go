package render

import (
	"bytes"
	"image/color"
	"image/png"
	"slices"
	"testing"

	"valnoise/internal/core"
	"valnoise/internal/noise"
)

func TestFillMatchesSerialSampling(t *testing.T) {
	tab := noise.BuildTable(17)
	s := noise.NewSampler(tab, 0.07)

	r := core.NewRaster(61, 43)
	Fill(r, func(x, y int) float64 { return s.At3(float64(x), float64(y), 2.5) })

	want := make([]float64, r.W*r.H)
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			want[y*r.W+x] = s.At3(float64(x), float64(y), 2.5)
		}
	}
	if !slices.Equal(r.Samples(), want) {
		t.Fatal("parallel fill differs from serial sampling")
	}
}

func TestGrayscaleMatchesLevels(t *testing.T) {
	p := Grayscale()
	if len(p) != 256 {
		t.Fatalf("grayscale palette has %d entries", len(p))
	}
	for i, c := range p {
		if c.R != uint8(i) || c.G != uint8(i) || c.B != uint8(i) || c.A != 255 {
			t.Fatalf("level %d maps to %+v", i, c)
		}
	}
}

func TestGradientPalettesHitEndpoints(t *testing.T) {
	for _, name := range PaletteNames() {
		p, err := ByName(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(p) != 256 {
			t.Fatalf("%s: %d entries", name, len(p))
		}
		for i, c := range p {
			if c.A != 255 {
				t.Fatalf("%s: level %d not opaque", name, i)
			}
		}
	}

	terrain, _ := ByName("terrain")
	if got, want := terrain[0], (color.RGBA{R: 0x0b, G: 0x25, B: 0x45, A: 255}); got != want {
		t.Fatalf("terrain low end %+v, want %+v", got, want)
	}
	if got, want := terrain[255], (color.RGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 255}); got != want {
		t.Fatalf("terrain high end %+v, want %+v", got, want)
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("plasma"); err == nil {
		t.Fatal("expected error for unknown palette")
	}
}

func TestFillRGBAClampsAndClears(t *testing.T) {
	p := Palette{{R: 1, A: 255}, {R: 2, A: 255}}
	buf := make([]byte, 3*4)
	FillRGBA(buf, []uint8{0, 1, 200}, p)
	if buf[0] != 1 || buf[4] != 2 || buf[8] != 2 {
		t.Fatalf("unexpected pixels %v", buf)
	}

	FillRGBA(buf, []uint8{0, 1, 2}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared", i)
		}
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	r := core.NewRaster(4, 2)
	r.Set(0, 0, -1)
	r.Set(1, 0, 1)
	r.Set(2, 0, 0)

	img := ToImage(r, Grayscale())
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("write: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("decoded bounds %v", b)
	}

	gray := func(x, y int) uint8 {
		c := color.RGBAModel.Convert(decoded.At(x, y)).(color.RGBA)
		return c.R
	}
	if gray(0, 0) != 0 || gray(1, 0) != 255 || gray(2, 0) != 127 {
		t.Fatalf("levels %d %d %d", gray(0, 0), gray(1, 0), gray(2, 0))
	}
}
