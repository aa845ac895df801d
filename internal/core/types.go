package core

// Size describes the dimensions of a sampled grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	return s.W * s.H
}
