package gsp

import (
	"math"

	"github.com/jvaillant/tinysea-go/nvector"
	"github.com/jvaillant/tinysea-go/quantity"
)

// StateFactory owns the discretization resolution, the Earth radius, the
// search target, and the admissible heuristic's denominator. It is the
// only place a raw (position, time) pair turns into a State.
type StateFactory struct {
	deltaT      quantity.Second
	deltaD      quantity.Meter
	radius      quantity.Meter
	target      nvector.NVector
	maxVelocity quantity.MetersPerSecond
	startTime   quantity.Second
}

// NewStateFactory builds a factory with an explicit start time. g is
// always computed as t - startTime (see the design notes on the resolved
// open question); callers seeding a search at the true start time get
// g=0 for their seed state, same as a factory with no notion of start
// time at all would.
func NewStateFactory(deltaT quantity.Second, deltaD, radius quantity.Meter, target nvector.NVector, maxVelocity quantity.MetersPerSecond, startTime quantity.Second) *StateFactory {
	return &StateFactory{
		deltaT:      deltaT,
		deltaD:      deltaD,
		radius:      radius,
		target:      target,
		maxVelocity: maxVelocity,
		startTime:   startTime,
	}
}

// Build computes the discrete key, g, h, and f for (position, time),
// optionally chaining to a parent key.
func (f *StateFactory) Build(position nvector.NVector, t quantity.Second, parent *DiscreteKey) State {
	s := State{
		Position: position,
		Time:     t,
		Key:      f.discreteKey(position, t),
		G:        quantity.Cost(t - f.startTime),
		H:        f.heuristic(position),
	}
	s.F = s.G + s.H
	if parent != nil {
		s.ParentKey = *parent
		s.HasParent = true
	}
	return s
}

func (f *StateFactory) heuristic(position nvector.NVector) quantity.Cost {
	d := nvector.Distance(position, f.target, f.radius)
	return quantity.Cost(float64(d) / float64(f.maxVelocity))
}

// DistanceToTarget inverts the heuristic to recover the remaining
// great-circle distance implied by a state's h. The expander uses it to
// shorten the last step of a trajectory.
func (f *StateFactory) DistanceToTarget(s State) quantity.Meter {
	return quantity.Meter(float64(s.H) * float64(f.maxVelocity))
}

func (f *StateFactory) discreteKey(position nvector.NVector, t quantity.Second) DiscreteKey {
	return DiscreteKey{
		T: uint64(math.Floor(float64(t) / float64(f.deltaT))),
		X: int64(math.Floor(position.X * float64(f.radius) / float64(f.deltaD))),
		Y: int64(math.Floor(position.Y * float64(f.radius) / float64(f.deltaD))),
		Z: int64(math.Floor(position.Z * float64(f.radius) / float64(f.deltaD))),
	}
}
