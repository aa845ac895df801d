package ui

import (
	"math"
	"strconv"

	"valnoise/internal/core"
)

// latticeSpacingMin is the smallest gap in raster cells at which lattice lines
// are still drawn.
const latticeSpacingMin = 2.0

// LatticeLines returns the raster positions in [0, n) where the noise
// coordinate u = pos*freq + offset crosses an integer. It returns nil when
// freq is not positive or the lines would be denser than latticeSpacingMin.
func LatticeLines(n int, freq, offset float64) []float64 {
	if n <= 0 || freq <= 0 || math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil
	}
	if 1/freq < latticeSpacingMin {
		return nil
	}
	end := float64(n)
	first := math.Ceil(offset)
	var lines []float64
	for k := first; ; k++ {
		pos := (k - offset) / freq
		if pos >= end {
			break
		}
		lines = append(lines, pos)
	}
	return lines
}

// latticeFrame extracts frequency and x/y offsets from a parameter snapshot.
// Missing offsets default to zero.
func latticeFrame(s core.ParameterSnapshot) (freq, ox, oy float64, ok bool) {
	p, found := s.Lookup("freq")
	if !found {
		return 0, 0, 0, false
	}
	freq, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, 0, 0, false
	}
	ox = floatParam(s, "ox")
	oy = floatParam(s, "oy")
	return freq, ox, oy, true
}

func floatParam(s core.ParameterSnapshot, key string) float64 {
	p, ok := s.Lookup(key)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0
	}
	return v
}
