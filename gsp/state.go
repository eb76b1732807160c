package gsp

import (
	"github.com/jvaillant/tinysea-go/nvector"
	"github.com/jvaillant/tinysea-go/quantity"
)

// State is a single point of the search: a continuous (position, time)
// tagged with the discrete key used for duplicate detection, and the A*
// costs computed once at construction.
//
// F is exactly G+H at construction and is never recomputed; ParentKey is
// absent (HasParent false) only for seed states.
type State struct {
	Position  nvector.NVector
	Time      quantity.Second
	Key       DiscreteKey
	G         quantity.Cost
	H         quantity.Cost
	F         quantity.Cost
	ParentKey DiscreteKey
	HasParent bool
}

// Same reports spatial discrete-key equality only, ignoring the state's
// time bucket. This is the planner's goal test — never use it in place of
// full key equality for open/close list membership.
func (s State) Same(other State) bool {
	return s.Key.SameSpace(other.Key)
}

// Better is strict f1 < f2. Ties are not broken here; equal-f states
// leave an open list in whatever order its heap yields them.
func (s State) Better(other State) bool {
	return s.F < other.F
}
