// Package density renders a vertical slice through a 3D density field and
// classifies each cell as solid or air.
package density

import (
	"strconv"

	"valnoise/internal/core"
	"valnoise/internal/fields"
	"valnoise/internal/noise"
	"valnoise/internal/render"
)

const (
	// Solid marks a cell whose density is above the threshold.
	Solid = 1.0
	// Air marks every other cell.
	Air = -1.0
)

// Config controls the density slice.
type Config struct {
	Width     int
	Height    int
	Frequency float64
	// Z is the depth of the slice at reset.
	Z float64
	// ZStep is how far the slice moves per step, in noise units.
	ZStep float64
	// Bias weights the height gradient: the top row loses Bias density and
	// the bottom row gains it.
	Bias      float64
	Threshold float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 128, Frequency: 1.0 / 12, ZStep: 0.25, Bias: 0.6}
}

// FromMap populates the config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["freq"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Frequency = parsed
		}
	}
	if v, ok := cfg["z"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Z = parsed
		}
	}
	if v, ok := cfg["zstep"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.ZStep = parsed
		}
	}
	if v, ok := cfg["bias"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Bias = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Threshold = parsed
		}
	}
	return c
}

// Slice is the density view.
type Slice struct {
	cfg    Config
	table  *noise.Table
	depth  *core.AxisClock
	raster *core.Raster
	solid  int
}

// New returns a density slice for the configuration.
func New(cfg Config) *Slice {
	return &Slice{
		cfg:    cfg,
		depth:  core.NewAxisClock(cfg.Z, cfg.ZStep),
		raster: core.NewRaster(cfg.Width, cfg.Height),
	}
}

// Name returns the view identifier.
func (s *Slice) Name() string { return "density" }

// Size reports the raster dimensions.
func (s *Slice) Size() core.Size { return s.raster.Size() }

// Raster exposes Solid/Air classifications.
func (s *Slice) Raster() *core.Raster { return s.raster }

// Depth returns the z coordinate of the current slice.
func (s *Slice) Depth() float64 { return s.depth.Position() }

// SolidCount reports how many cells are solid in the current slice.
func (s *Slice) SolidCount() int { return s.solid }

// Reset binds the table and returns the slice to its configured depth.
func (s *Slice) Reset(t *noise.Table) {
	s.table = t
	s.depth.Rewind(s.cfg.Z)
	s.resample()
}

// Step moves the slice along z.
func (s *Slice) Step() {
	if s.table == nil {
		return
	}
	s.depth.Advance()
	s.resample()
}

// Density returns the biased density at raster cell (x, y) for depth z.
func (s *Slice) Density(x, y int, z float64) float64 {
	f := s.cfg.Frequency
	sample := noise.Sample3D(s.table, float64(x)*f, float64(y)*f, z)
	return sample - float64(s.cfg.Bias*heightGradient(y, s.raster.H))
}

// heightGradient is +1 on the top row and -1 on the bottom row.
func heightGradient(y, h int) float64 {
	if h <= 1 {
		return 0
	}
	return 1 - 2*float64(y)/float64(h-1)
}

func (s *Slice) resample() {
	if s.table == nil {
		return
	}
	z := s.depth.Position()
	threshold := s.cfg.Threshold
	render.Fill(s.raster, func(x, y int) float64 {
		if s.Density(x, y, z) > threshold {
			return Solid
		}
		return Air
	})
	s.solid = 0
	for _, v := range s.raster.Samples() {
		if v == Solid {
			s.solid++
		}
	}
}

// Parameters reports the tunables for the HUD.
func (s *Slice) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Density",
		Params: []core.Parameter{
			core.IntParam("w", "Width", s.cfg.Width),
			core.IntParam("h", "Height", s.cfg.Height),
			core.FloatParam("freq", "Frequency", s.cfg.Frequency),
			core.FloatParam("z", "Depth", s.depth.Position()),
			core.FloatParam("zstep", "Depth per step", s.cfg.ZStep),
			core.FloatParam("bias", "Height bias", s.cfg.Bias),
			core.FloatParam("threshold", "Solid threshold", s.cfg.Threshold),
			core.IntParam("solid", "Solid cells", s.solid),
		},
	}}}
}

// SetFloatParameter adjusts freq, bias, threshold or zstep.
func (s *Slice) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "freq":
		if value <= 0 {
			return false
		}
		s.cfg.Frequency = value
	case "bias":
		if value < 0 {
			return false
		}
		s.cfg.Bias = value
	case "threshold":
		s.cfg.Threshold = value
	case "zstep":
		s.cfg.ZStep = value
		s.depth.SetStep(value)
		return true
	default:
		return false
	}
	s.resample()
	return true
}

func init() {
	fields.Register("density", func(cfg map[string]string) fields.View {
		return New(FromMap(cfg))
	})
}
