package density

import (
	"slices"
	"testing"

	"valnoise/internal/noise"
)

func TestCellsAreSolidOrAir(t *testing.T) {
	s := New(Config{Width: 48, Height: 32, Frequency: 0.15, ZStep: 0.5, Bias: 0.4})
	s.Reset(noise.BuildTable(19))

	count := 0
	for i, v := range s.Raster().Samples() {
		switch v {
		case Solid:
			count++
		case Air:
		default:
			t.Fatalf("cell %d = %v, want Solid or Air", i, v)
		}
	}
	if count != s.SolidCount() {
		t.Fatalf("SolidCount %d, counted %d", s.SolidCount(), count)
	}
}

func TestStrongBiasSeparatesSkyAndGround(t *testing.T) {
	s := New(Config{Width: 32, Height: 16, Frequency: 0.2, Bias: 2.5})
	s.Reset(noise.BuildTable(4))
	r := s.Raster()
	for x := 0; x < r.W; x++ {
		if r.At(x, 0) != Air {
			t.Fatalf("top row cell %d should be air", x)
		}
		if r.At(x, r.H-1) != Solid {
			t.Fatalf("bottom row cell %d should be solid", x)
		}
	}
}

func TestDensityUsesSample3D(t *testing.T) {
	tab := noise.BuildTable(71)
	s := New(Config{Width: 10, Height: 11, Frequency: 0.5, Z: 3.25, Bias: 0.5})
	s.Reset(tab)

	// Row 5 of 11 is the middle, where the height gradient is zero.
	for x := 0; x < 10; x++ {
		want := noise.Sample3D(tab, float64(x)*0.5, 2.5, 3.25)
		if got := s.Density(x, 5, 3.25); got != want {
			t.Fatalf("density at column %d = %v, want %v", x, got, want)
		}
	}
}

func TestStepMovesSlice(t *testing.T) {
	cfg := Config{Width: 40, Height: 40, Frequency: 0.2, ZStep: 1.5}
	s := New(cfg)
	s.Reset(noise.BuildTable(30))
	first := slices.Clone(s.Raster().Samples())

	s.Step()
	if s.Depth() != 1.5 {
		t.Fatalf("depth %v, want 1.5", s.Depth())
	}
	if slices.Equal(first, s.Raster().Samples()) {
		t.Fatal("slice did not change after moving along z")
	}

	other := New(Config{Width: 40, Height: 40, Frequency: 0.2, Z: 1.5})
	other.Reset(noise.BuildTable(30))
	if !slices.Equal(other.Raster().Samples(), s.Raster().Samples()) {
		t.Fatal("stepping to z=1.5 should match a slice configured at z=1.5")
	}
}

func TestSetFloatParameter(t *testing.T) {
	s := New(DefaultConfig())
	s.Reset(noise.BuildTable(1))
	if !s.SetFloatParameter("threshold", 5) {
		t.Fatal("threshold should be adjustable")
	}
	if s.SolidCount() != 0 {
		t.Fatalf("threshold above the density range left %d solid cells", s.SolidCount())
	}
	if s.SetFloatParameter("bias", -1) {
		t.Fatal("negative bias should be rejected")
	}
}
