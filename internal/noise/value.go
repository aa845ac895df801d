package noise

import "math"

// Sample2D returns value noise at (x, y) in [-1, 1].
//
// The four lattice corners around (x, y) are hashed through t, scaled to
// [0, 1] and blended with plain linear interpolation, first along x and then
// along y. There is no fade curve, so the field is continuous but its slope
// jumps at integer lattice lines. The field repeats every 256 units on each
// axis.
func Sample2D(t *Table, x, y float64) float64 {
	i, u := lattice(x)
	j, v := lattice(y)
	ii, jj := i&tableMask, j&tableMask

	p := &t.p
	nll := corner(p[ii+int(p[jj])])
	nhl := corner(p[ii+1+int(p[jj])])
	nlh := corner(p[ii+int(p[jj+1])])
	nhh := corner(p[ii+1+int(p[jj+1])])

	nyl := lerp(nll, nhl, u)
	nyh := lerp(nlh, nhh, u)
	nxy := lerp(nyl, nyh, v)

	return nxy*2 - 1
}

// Sample3D returns value noise at (x, y, z) in [-1, 1]. Corners are blended
// along x, then y, then z. See Sample2D for the caveats.
func Sample3D(t *Table, x, y, z float64) float64 {
	i, u := lattice(x)
	j, v := lattice(y)
	k, w := lattice(z)
	ii, jj, kk := i&tableMask, j&tableMask, k&tableMask

	p := &t.p
	zl, zh := int(p[kk]), int(p[kk+1])
	yll := int(p[jj+zl])
	yhl := int(p[jj+1+zl])
	ylh := int(p[jj+zh])
	yhh := int(p[jj+1+zh])

	nlll := corner(p[ii+yll])
	nlhl := corner(p[ii+yhl])
	nhll := corner(p[ii+1+yll])
	nhhl := corner(p[ii+1+yhl])
	nllh := corner(p[ii+ylh])
	nlhh := corner(p[ii+yhh])
	nhlh := corner(p[ii+1+ylh])
	nhhh := corner(p[ii+1+yhh])

	nyll := lerp(nlll, nhll, u)
	nyhl := lerp(nlhl, nhhl, u)
	nylh := lerp(nllh, nhlh, u)
	nyhh := lerp(nlhh, nhhh, u)

	nxyl := lerp(nyll, nyhl, v)
	nxyh := lerp(nylh, nyhh, v)

	nxyz := lerp(nxyl, nxyh, w)

	return nxyz*2 - 1
}

// lattice splits x into the integer cell below it (rounding toward negative
// infinity, so -0.5 lands in cell -1) and the offset inside that cell.
// Inputs beyond the int range still mask to a valid table index.
func lattice(x float64) (int, float64) {
	f := math.Floor(x)
	return int(f), x - f
}

func corner(h uint8) float64 { return float64(h) / 255 }

// lerp blends a toward b by t. The explicit conversion stops the compiler
// from fusing the multiply and add, which would change low bits between
// architectures.
func lerp(a, b, t float64) float64 {
	return a + float64((b-a)*t)
}
