package gsp

import (
	"github.com/jvaillant/tinysea-go/nvector"
	"github.com/jvaillant/tinysea-go/polar"
	"github.com/jvaillant/tinysea-go/quantity"
	"github.com/jvaillant/tinysea-go/wind"
)

// Expander produces successor states for a given state, coupling the
// continuous position/time dynamics of a sailing boat to the
// discretized state space. Its neighbors buffer is preallocated once and
// reused between calls, as the resource policy requires.
type Expander struct {
	factory   *StateFactory
	field     *wind.TimeWindField
	table     *polar.Table
	stepLimit quantity.Meter
	scratch   []State
}

// NewExpander builds an expander bound to factory, field and table, with
// a fixed expansion arc-length L.
func NewExpander(factory *StateFactory, field *wind.TimeWindField, table *polar.Table, stepLimit quantity.Meter) *Expander {
	return &Expander{factory: factory, field: field, table: table, stepLimit: stepLimit}
}

// Search returns the successors of s, in the fixed order: hold-in-place
// first, then one per polar curve in storage order. The returned slice
// is the expander's own reused scratch buffer — callers must not retain
// it past the next call to Search.
func (e *Expander) Search(s State) []State {
	e.scratch = e.scratch[:0]

	timeSpace := e.field.TimeSpace()
	if float64(s.Time) >= timeSpace.Stop() {
		return e.scratch
	}

	windIndex := timeSpace.SafeIndex(float64(s.Time))
	tNext := quantity.Second(timeSpace.Value(windIndex + 1))

	// Hold-in-place: wait out the current wind/time step.
	e.scratch = append(e.scratch, e.factory.Build(s.Position, tNext, &s.Key))

	lat, lon := s.Position.ToLatLon()
	sample := e.field.SampleAt(s.Time, lat, lon)

	step := e.stepLimit
	if d := e.factory.DistanceToTarget(s); d < step {
		step = d
	}

	for _, curve := range e.table.Curves() {
		boatSpeed := curve.SafeInterpolated(sample.Speed)
		if boatSpeed <= 0 {
			continue
		}

		theta := sample.Bearing + curve.RelBearing
		newPos := nvector.Destination(s.Position, theta, step, quantity.EarthRadius)
		dt := quantity.Second(float64(step) / float64(boatSpeed))

		e.scratch = append(e.scratch, e.factory.Build(newPos, s.Time+dt, &s.Key))
	}

	return e.scratch
}
