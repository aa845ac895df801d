package plane

import (
	"slices"
	"testing"

	"valnoise/internal/noise"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30

	a := New(cfg)
	a.Reset(noise.BuildTable(5))
	b := New(cfg)
	b.Reset(noise.BuildTable(5))

	if !slices.Equal(a.Raster().Samples(), b.Raster().Samples()) {
		t.Fatal("same seed produced different planes")
	}

	c := New(cfg)
	c.Reset(noise.BuildTable(6))
	if slices.Equal(a.Raster().Samples(), c.Raster().Samples()) {
		t.Fatal("different seeds produced identical planes")
	}
}

func TestSamplesMatchEvaluator(t *testing.T) {
	cfg := Config{Width: 16, Height: 16, Frequency: 0.3, OffsetX: -4, OffsetY: 2.5}
	tab := noise.BuildTable(12)
	p := New(cfg)
	p.Reset(tab)

	s := noise.Sampler{Table: tab, Frequency: 0.3, OffsetX: -4, OffsetY: 2.5}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got, want := p.Raster().At(x, y), s.At2(float64(x), float64(y)); got != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestStepPans(t *testing.T) {
	cfg := Config{Width: 8, Height: 4, Frequency: 1, Pan: 1}
	tab := noise.BuildTable(3)
	p := New(cfg)
	p.Reset(tab)

	// Panning one lattice unit shifts the whole image one column left.
	before := slices.Clone(p.Raster().Samples())
	p.Step()
	for y := 0; y < 4; y++ {
		for x := 0; x < 7; x++ {
			if got, want := p.Raster().At(x, y), before[y*8+x+1]; got != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	still := New(Config{Width: 8, Height: 4, Frequency: 1})
	still.Reset(tab)
	snap := slices.Clone(still.Raster().Samples())
	still.Step()
	if !slices.Equal(snap, still.Raster().Samples()) {
		t.Fatal("step without pan should leave the raster unchanged")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "64", "h": "-1", "freq": "0.5", "ox": "3", "pan": "bogus"})
	if c.Width != 64 {
		t.Fatalf("width %d", c.Width)
	}
	if c.Height != DefaultConfig().Height {
		t.Fatalf("negative height should be ignored, got %d", c.Height)
	}
	if c.Frequency != 0.5 || c.OffsetX != 3 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Pan != 0 {
		t.Fatalf("malformed pan should be ignored, got %v", c.Pan)
	}
}

func TestSetFloatParameter(t *testing.T) {
	p := New(Config{Width: 8, Height: 8, Frequency: 0.1})
	p.Reset(noise.BuildTable(1))

	if !p.SetFloatParameter("freq", 0.2) {
		t.Fatal("freq should be adjustable")
	}
	if got, ok := p.Parameters().Lookup("freq"); !ok || got.Value != "0.2" {
		t.Fatalf("freq parameter %+v", got)
	}
	if p.SetFloatParameter("freq", 0) {
		t.Fatal("zero frequency should be rejected")
	}
	if p.SetFloatParameter("nope", 1) {
		t.Fatal("unknown key should be rejected")
	}
}
