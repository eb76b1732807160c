// Package wind implements the time-indexed wind field: a stack of 2-D
// (latitude, longitude) -> (bearing, speed) grids indexed by time.
package wind

import (
	"fmt"

	"github.com/jvaillant/tinysea-go/linear"
	"github.com/jvaillant/tinysea-go/quantity"
)

// Grid is a single forecast snapshot: wind bearing and speed over a
// regular (latitude, longitude) grid, in radians.
type Grid struct {
	*linear.Grid[linear.BearingSample]
}

// NewGrid builds a wind Grid over the given lat/lon axes from row-major
// samples.
func NewGrid(lat, lon *linear.Space, samples []linear.BearingSample) (Grid, error) {
	g, err := linear.NewGrid(lon, lat, samples, linear.WindInterp)
	if err != nil {
		return Grid{}, err
	}
	return Grid{g}, nil
}

// TimeWindField is a LinearList over time whose values are wind grids.
// Time selection uses the null interpolator: the grid in effect at any
// instant is the one whose Value(i) interval contains it.
type TimeWindField struct {
	byTime *linear.List[Grid]
}

// GridAt returns the grid active at time t, clamping t into the field's
// time range (t beyond Stop still returns the last grid; the caller uses
// that as a termination signal, not an error).
func (f *TimeWindField) GridAt(t quantity.Second) Grid {
	return f.byTime.SafeInterpolated(float64(t))
}

// TimeSpace exposes the underlying time axis so callers (the neighbor
// expander) can find the next grid boundary.
func (f *TimeWindField) TimeSpace() *linear.Space {
	return f.byTime.Space()
}

// SampleAt returns the interpolated (bearing, speed) at (t, lat, lon):
// floor-select the active grid by time, then bilinearly interpolate that
// grid in space, both via the clamped accessors.
func (f *TimeWindField) SampleAt(t quantity.Second, lat, lon quantity.Radian) linear.BearingSample {
	g := f.GridAt(t)
	return g.SafeInterpolated(float64(lon), float64(lat))
}

// Builder accumulates grids in time order.
type Builder struct {
	timeSpace *linear.Space
	grids     []Grid
}

// NewBuilder starts a builder over the given time axis.
func NewBuilder(timeSpace *linear.Space) *Builder {
	return &Builder{timeSpace: timeSpace}
}

// Add appends the next grid in time order. Fails if more grids are added
// than the time space has room for.
func (b *Builder) Add(g Grid) error {
	if len(b.grids) >= b.timeSpace.N() {
		return fmt.Errorf("wind: time-window field builder received more grids (%d) than its time axis allows (%d)", len(b.grids)+1, b.timeSpace.N())
	}
	b.grids = append(b.grids, g)
	return nil
}

// Build finalizes the field. Fails if fewer grids were added than the
// time space requires.
func (b *Builder) Build() (*TimeWindField, error) {
	if len(b.grids) != b.timeSpace.N() {
		return nil, fmt.Errorf("wind: time-window field needs %d grids, got %d", b.timeSpace.N(), len(b.grids))
	}
	list, err := linear.NewList(b.timeSpace, b.grids, linear.NullInterp[Grid])
	if err != nil {
		return nil, err
	}
	return &TimeWindField{byTime: list}, nil
}
