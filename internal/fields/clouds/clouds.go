// Package clouds animates a cloud-cover layer by sweeping the third noise
// axis over time.
package clouds

import (
	"strconv"

	"valnoise/internal/core"
	"valnoise/internal/fields"
	"valnoise/internal/noise"
	"valnoise/internal/render"
)

// Config controls the cloud layer.
type Config struct {
	Width     int
	Height    int
	Frequency float64
	// Speed is the distance travelled along the time axis per step.
	Speed float64
	// Cover shifts density up (more cloud) or down before clamping.
	Cover float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Frequency: 1.0 / 24, Speed: 0.05}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
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
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Speed = parsed
		}
	}
	if v, ok := cfg["cover"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= -2 && parsed <= 2 {
			c.Cover = parsed
		}
	}
	return c
}

// Layer is the cloud view.
type Layer struct {
	cfg    Config
	table  *noise.Table
	clock  *core.AxisClock
	raster *core.Raster
}

// New returns a cloud layer for the configuration.
func New(cfg Config) *Layer {
	return &Layer{
		cfg:    cfg,
		clock:  core.NewAxisClock(0, cfg.Speed),
		raster: core.NewRaster(cfg.Width, cfg.Height),
	}
}

// Name returns the view identifier.
func (l *Layer) Name() string { return "clouds" }

// Size reports the raster dimensions.
func (l *Layer) Size() core.Size { return l.raster.Size() }

// Raster exposes the current cover values.
func (l *Layer) Raster() *core.Raster { return l.raster }

// Time returns the current position on the time axis.
func (l *Layer) Time() float64 { return l.clock.Position() }

// Reset binds the table and rewinds time to zero.
func (l *Layer) Reset(t *noise.Table) {
	l.table = t
	l.clock.Rewind(0)
	l.resample()
}

// Step advances time by Speed and resamples.
func (l *Layer) Step() {
	if l.table == nil {
		return
	}
	l.clock.Advance()
	l.resample()
}

func (l *Layer) resample() {
	if l.table == nil {
		return
	}
	t := l.table
	f := l.cfg.Frequency
	z := l.clock.Position()
	cover := l.cfg.Cover
	render.Fill(l.raster, func(x, y int) float64 {
		return clamp(noise.Sample3D(t, float64(x)*f, float64(y)*f, z) + cover)
	})
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// Parameters reports the tunables for the HUD.
func (l *Layer) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Clouds",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.cfg.Width),
				core.IntParam("h", "Height", l.cfg.Height),
				core.FloatParam("freq", "Frequency", l.cfg.Frequency),
				core.FloatParam("cover", "Cover", l.cfg.Cover),
			},
		},
		{
			Name: "Time",
			Params: []core.Parameter{
				core.FloatParam("speed", "Speed", l.cfg.Speed),
				core.FloatParam("t", "Time", l.clock.Position()),
			},
		},
	}}
}

// SetFloatParameter adjusts freq, speed or cover.
func (l *Layer) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "freq":
		if value <= 0 {
			return false
		}
		l.cfg.Frequency = value
	case "speed":
		l.cfg.Speed = value
		l.clock.SetStep(value)
		return true
	case "cover":
		if value < -2 {
			value = -2
		}
		if value > 2 {
			value = 2
		}
		l.cfg.Cover = value
	default:
		return false
	}
	l.resample()
	return true
}

func init() {
	fields.Register("clouds", func(cfg map[string]string) fields.View {
		return New(FromMap(cfg))
	})
}
