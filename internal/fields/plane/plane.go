// Package plane renders a flat 2D slice of value noise.
package plane

import (
	"strconv"

	"valnoise/internal/core"
	"valnoise/internal/fields"
	"valnoise/internal/noise"
	"valnoise/internal/render"
)

// Config holds parameters for the plane view.
type Config struct {
	Width     int
	Height    int
	Frequency float64
	OffsetX   float64
	OffsetY   float64
	// Pan is how far the view scrolls along x per step, in noise units.
	Pan float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Frequency: 1.0 / 16}
}

// FromMap populates a Config from a string map.
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
	if v, ok := cfg["ox"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.OffsetX = parsed
		}
	}
	if v, ok := cfg["oy"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.OffsetY = parsed
		}
	}
	if v, ok := cfg["pan"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Pan = parsed
		}
	}
	return c
}

// Plane samples Sample2D over a grid.
type Plane struct {
	cfg     Config
	sampler noise.Sampler
	pan     *core.AxisClock
	raster  *core.Raster
}

// New returns a plane view for the configuration. Reset must be called
// before the raster holds samples.
func New(cfg Config) *Plane {
	return &Plane{
		cfg:    cfg,
		pan:    core.NewAxisClock(cfg.OffsetX, cfg.Pan),
		raster: core.NewRaster(cfg.Width, cfg.Height),
	}
}

// Name returns the view identifier.
func (p *Plane) Name() string { return "plane" }

// Size returns the raster dimensions.
func (p *Plane) Size() core.Size { return p.raster.Size() }

// Raster exposes the sampled values.
func (p *Plane) Raster() *core.Raster { return p.raster }

// Reset binds the table and resamples at the configured offset.
func (p *Plane) Reset(t *noise.Table) {
	p.sampler = noise.Sampler{Table: t, Frequency: p.cfg.Frequency, OffsetY: p.cfg.OffsetY}
	p.pan.Rewind(p.cfg.OffsetX)
	p.resample()
}

// Step scrolls by Pan and resamples. With Pan == 0 the raster is unchanged.
func (p *Plane) Step() {
	if p.sampler.Table == nil || p.cfg.Pan == 0 {
		return
	}
	p.pan.Advance()
	p.resample()
}

func (p *Plane) resample() {
	if p.sampler.Table == nil {
		return
	}
	s := p.sampler
	s.OffsetX = p.pan.Position()
	render.Fill(p.raster, func(x, y int) float64 {
		return s.At2(float64(x), float64(y))
	})
}

// Parameters reports the tunables for the HUD.
func (p *Plane) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Plane",
		Params: []core.Parameter{
			core.IntParam("w", "Width", p.cfg.Width),
			core.IntParam("h", "Height", p.cfg.Height),
			core.FloatParam("freq", "Frequency", p.cfg.Frequency),
			core.FloatParam("ox", "Offset X", p.pan.Position()),
			core.FloatParam("oy", "Offset Y", p.cfg.OffsetY),
			core.FloatParam("pan", "Pan per step", p.cfg.Pan),
		},
	}}}
}

// SetFloatParameter updates freq, pan or the offsets and resamples.
func (p *Plane) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "freq":
		if value <= 0 {
			return false
		}
		p.cfg.Frequency = value
		p.sampler.Frequency = value
	case "pan":
		p.cfg.Pan = value
		p.pan.SetStep(value)
	case "ox":
		p.cfg.OffsetX = value
		p.pan.Rewind(value)
	case "oy":
		p.cfg.OffsetY = value
		p.sampler.OffsetY = value
	default:
		return false
	}
	p.resample()
	return true
}

func init() {
	fields.Register("plane", func(cfg map[string]string) fields.View {
		return New(FromMap(cfg))
	})
}
