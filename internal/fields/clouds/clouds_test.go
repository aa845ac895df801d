package clouds

import (
	"math"
	"slices"
	"testing"

	"valnoise/internal/noise"
)

func TestStepAdvancesTime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 32
	cfg.Speed = 0.5

	l := New(cfg)
	l.Reset(noise.BuildTable(8))
	first := slices.Clone(l.Raster().Samples())

	l.Step()
	l.Step()
	if got := l.Time(); got != 1 {
		t.Fatalf("time after two steps %v, want 1", got)
	}
	if slices.Equal(first, l.Raster().Samples()) {
		t.Fatal("cloud layer did not evolve")
	}

	l.Reset(noise.BuildTable(8))
	if !slices.Equal(first, l.Raster().Samples()) {
		t.Fatal("reset should return to the initial cover")
	}
}

func TestCoverMatchesEvaluator(t *testing.T) {
	cfg := Config{Width: 12, Height: 9, Frequency: 0.2, Speed: 0.25, Cover: 0.3}
	tab := noise.BuildTable(44)
	l := New(cfg)
	l.Reset(tab)
	l.Step()

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			want := math.Min(1, noise.Sample3D(tab, float64(x)*0.2, float64(y)*0.2, 0.25)+0.3)
			if got := l.Raster().At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCoverClamps(t *testing.T) {
	l := New(Config{Width: 16, Height: 16, Frequency: 0.3, Cover: 2})
	l.Reset(noise.BuildTable(2))
	for i, v := range l.Raster().Samples() {
		if v != 1 {
			t.Fatalf("full cover should saturate, cell %d = %v", i, v)
		}
	}
	if !l.SetFloatParameter("cover", -5) {
		t.Fatal("cover should be adjustable")
	}
	for i, v := range l.Raster().Samples() {
		if v != -1 {
			t.Fatalf("clear sky should saturate low, cell %d = %v", i, v)
		}
	}
}

func TestSpeedChangeKeepsPosition(t *testing.T) {
	l := New(Config{Width: 4, Height: 4, Frequency: 1, Speed: 1})
	l.Reset(noise.BuildTable(1))
	l.Step()
	l.Step()
	l.SetFloatParameter("speed", 0.5)
	if l.Time() != 2 {
		t.Fatalf("time moved on speed change: %v", l.Time())
	}
	l.Step()
	if l.Time() != 2.5 {
		t.Fatalf("time after slower step %v, want 2.5", l.Time())
	}
}

func TestFromMapCover(t *testing.T) {
	if c := FromMap(map[string]string{"cover": "0.4", "speed": "0.1"}); c.Cover != 0.4 || c.Speed != 0.1 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c := FromMap(map[string]string{"cover": "9"}); c.Cover != 0 {
		t.Fatalf("out of range cover should be ignored, got %v", c.Cover)
	}
}
