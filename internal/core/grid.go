package core

import "math"

// Raster stores a 2D grid of noise samples in row-major order.
type Raster struct {
	W, H int
	data []float64
}

// NewRaster allocates a raster with the given dimensions.
func NewRaster(w, h int) *Raster {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Raster{W: w, H: h, data: make([]float64, w*h)}
}

// Size reports the raster dimensions.
func (r *Raster) Size() Size { return Size{W: r.W, H: r.H} }

// Samples exposes the backing slice so callers can read/write values directly.
func (r *Raster) Samples() []float64 { return r.data }

// Index returns the linear slice index for coordinates (x, y).
func (r *Raster) Index(x, y int) int { return y*r.W + x }

// At returns the sample stored at (x, y).
func (r *Raster) At(x, y int) float64 { return r.data[r.Index(x, y)] }

// Set stores a sample at (x, y).
func (r *Raster) Set(x, y int, v float64) { r.data[r.Index(x, y)] = v }

// Row returns the slice backing row y. Rows never overlap, so distinct rows
// may be written from different goroutines.
func (r *Raster) Row(y int) []float64 {
	start := y * r.W
	return r.data[start : start+r.W]
}

// MinMax returns the smallest and largest sample.
func (r *Raster) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range r.data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Quantize maps samples in [-1, 1] onto bytes with (v+1)/2*255, clamping
// anything outside the range. dst must hold at least W*H entries.
func (r *Raster) Quantize(dst []uint8) {
	for i, v := range r.data {
		dst[i] = QuantizeSample(v)
	}
}

// QuantizeSample converts a single sample to its byte level.
func QuantizeSample(v float64) uint8 {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= -1:
		return 0
	case v >= 1:
		return 255
	}
	return uint8((v + 1) / 2 * 255)
}
