package core

// AxisClock turns simulation steps into a coordinate along a sampling axis.
// The position depends only on the number of steps taken, so two clocks with
// the same origin and step agree exactly regardless of frame timing.
type AxisClock struct {
	origin float64
	step   float64
	ticks  uint64
}

// NewAxisClock constructs a clock starting at origin that advances by step.
func NewAxisClock(origin, step float64) *AxisClock {
	return &AxisClock{origin: origin, step: step}
}

// SetStep changes the advance per tick, keeping the current position.
func (c *AxisClock) SetStep(step float64) {
	c.origin = c.Position()
	c.ticks = 0
	c.step = step
}

// Advance moves the clock forward by one tick.
func (c *AxisClock) Advance() { c.ticks++ }

// Ticks reports how many ticks have elapsed since the last rebase.
func (c *AxisClock) Ticks() uint64 { return c.ticks }

// Position returns the current coordinate. It is computed from the tick
// count rather than accumulated so repeated additions cannot drift, and the
// product is rounded on its own so fused multiply-add cannot change it.
func (c *AxisClock) Position() float64 {
	return c.origin + float64(float64(c.ticks)*c.step)
}

// Rewind returns the clock to the given origin.
func (c *AxisClock) Rewind(origin float64) {
	c.origin = origin
	c.ticks = 0
}
