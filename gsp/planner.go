package gsp

import (
	"context"
	"errors"
)

// ErrBudgetExceeded is returned when a Planner run is aborted by its
// step budget before the open list was exhausted; a run aborted by its
// context returns ctx.Err() instead. Both signal a caller-imposed limit,
// not a domain violation.
var ErrBudgetExceeded = errors.New("gsp: search aborted, budget exceeded")

// NeighborExpander is the planner-facing surface of the neighbor
// expander: produce the successors of a state, in a fixed order. The
// real Expander satisfies this; tests substitute small abstract-graph
// fakes to exercise the main loop in isolation.
type NeighborExpander interface {
	Search(s State) []State
}

// Planner drives the Hybrid A* main loop against an open list, a close
// list, and a neighbor expander. It is a pure function of its inputs
// besides ctx's deadline: it mutates no state of its own.
type Planner struct {
	// MaxSteps caps the number of pop/expand cycles; zero means
	// unbounded. This is a host-imposed budget, not part of the core
	// algorithm's contract.
	MaxSteps int
}

// FindShortestPath runs the main loop until goal is reached (spatial key
// match), the open list is exhausted, or ctx is done / the step budget
// is spent. open must already contain at least one seed state.
//
// Returns (state, nil) on success, (nil, nil) if the open list is
// exhausted without reaching goal, and (nil, err) if the run was aborted
// by ctx or the step budget.
func (p *Planner) FindShortestPath(ctx context.Context, goal State, open OpenList, close *CloseList, expander NeighborExpander) (*State, error) {
	updater, supportsUpdate := open.(Updater)
	if !open.SupportsUpdate() {
		updater, supportsUpdate = nil, false
	}

	steps := 0
	for !open.Empty() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p.MaxSteps > 0 && steps >= p.MaxSteps {
			return nil, ErrBudgetExceeded
		}
		steps++

		best := open.Pop()
		stored, inserted := close.Insert(best)
		if !inserted {
			// A stale duplicate popped from the non-updating open
			// list after a better copy already closed this key.
			continue
		}

		if stored.Same(goal) {
			return stored, nil
		}

		for _, n := range expander.Search(*stored) {
			if close.Contains(n.Key) {
				continue
			}
			existing, isNew := open.Insert(n)
			if supportsUpdate && !isNew && n.Better(*existing) {
				updater.Update(existing, n)
			}
		}
	}

	return nil, nil
}
