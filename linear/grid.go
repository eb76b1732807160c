package linear

import "fmt"

// Grid is the 2-D generalization of List: a regularly spaced (x, y) axis
// pair over a value buffer of size (Nx+1)*(Ny+1). The trailing row and
// column each duplicate their neighbor, exactly as List duplicates its
// trailing slot.
type Grid[V any] struct {
	x, y   *Space
	values []V // row-major, (x.N()+1) columns per row
	cols   int
	interp Interp[V]
}

// NewGrid builds a Grid from exactly x.N()*y.N() values in row-major
// (y-major, x-minor) order; the trailing row and column are appended
// automatically.
func NewGrid[V any](x, y *Space, values []V, interp Interp[V]) (*Grid[V], error) {
	want := x.N() * y.N()
	if len(values) != want {
		return nil, fmt.Errorf("linear: grid needs %d values, got %d", want, len(values))
	}

	cols := x.N() + 1
	rows := y.N() + 1
	buf := make([]V, cols*rows)

	for j := 0; j < y.N(); j++ {
		for i := 0; i < x.N(); i++ {
			buf[j*cols+i] = values[j*x.N()+i]
		}
		buf[j*cols+x.N()] = buf[j*cols+x.N()-1] // duplicate trailing column
	}
	lastRow := (y.N() - 1) * cols
	dupRow := (rows - 1) * cols
	copy(buf[dupRow:dupRow+cols], buf[lastRow:lastRow+cols]) // duplicate trailing row

	return &Grid[V]{x: x, y: y, values: buf, cols: cols, interp: interp}, nil
}

func (g *Grid[V]) X() *Space { return g.x }
func (g *Grid[V]) Y() *Space { return g.y }

// At returns the checked value at grid indices (i, j).
func (g *Grid[V]) At(i, j int) (V, error) {
	var zero V
	if i < 0 || i >= g.cols || j < 0 || j >= len(g.values)/g.cols {
		return zero, fmt.Errorf("linear: grid index (%d, %d) out of range", i, j)
	}
	return g.values[j*g.cols+i], nil
}

// SafeAt clamps (i, j) into range and never fails.
func (g *Grid[V]) SafeAt(i, j int) V {
	rows := len(g.values) / g.cols
	if i < 0 {
		i = 0
	}
	if i >= g.cols {
		i = g.cols - 1
	}
	if j < 0 {
		j = 0
	}
	if j >= rows {
		j = rows - 1
	}
	return g.values[j*g.cols+i]
}

// Interpolated bilinearly interpolates at (qx, qy), composing the
// interpolator along x then along y. Requires both coordinates within
// their respective [start, stop].
func (g *Grid[V]) Interpolated(qx, qy float64) (V, error) {
	var zero V
	fx, ix, err := g.x.InterpolationWeight(qx)
	if err != nil {
		return zero, err
	}
	fy, iy, err := g.y.InterpolationWeight(qy)
	if err != nil {
		return zero, err
	}
	return g.bilinear(ix, iy, fx, fy), nil
}

// SafeInterpolated clamps both coordinates into range and never fails.
func (g *Grid[V]) SafeInterpolated(qx, qy float64) V {
	fx, ix := g.x.SafeInterpolationWeight(qx)
	fy, iy := g.y.SafeInterpolationWeight(qy)
	return g.bilinear(ix, iy, fx, fy)
}

func (g *Grid[V]) bilinear(ix, iy int, fx, fy float64) V {
	v00 := g.values[iy*g.cols+ix]
	v10 := g.values[iy*g.cols+ix+1]
	v01 := g.values[(iy+1)*g.cols+ix]
	v11 := g.values[(iy+1)*g.cols+ix+1]

	top := g.interp(v00, v10, fx)
	bottom := g.interp(v01, v11, fx)
	return g.interp(top, bottom, fy)
}
