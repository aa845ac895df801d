package noise

// Sampler scales and offsets coordinates before evaluating a shared table.
// The zero Frequency is treated as 1. A Sampler is a value; copies share the
// same immutable table. Scaled positions are rounded before the offset is
// added so they do not depend on fused multiply-add support.
type Sampler struct {
	Table     *Table
	Frequency float64

	OffsetX float64
	OffsetY float64
	OffsetZ float64
}

// NewSampler returns a Sampler for t at the given frequency.
func NewSampler(t *Table, frequency float64) Sampler {
	return Sampler{Table: t, Frequency: frequency}
}

func (s Sampler) freq() float64 {
	if s.Frequency == 0 {
		return 1
	}
	return s.Frequency
}

// At2 evaluates Sample2D at the scaled position.
func (s Sampler) At2(x, y float64) float64 {
	f := s.freq()
	return Sample2D(s.Table, float64(x*f)+s.OffsetX, float64(y*f)+s.OffsetY)
}

// At3 evaluates Sample3D at the scaled position.
func (s Sampler) At3(x, y, z float64) float64 {
	f := s.freq()
	return Sample3D(s.Table, float64(x*f)+s.OffsetX, float64(y*f)+s.OffsetY, float64(z*f)+s.OffsetZ)
}
