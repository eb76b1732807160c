package gsp

// NonUpdatingOpenList is a plain min-heap of states. Insert always pushes
// and Update is not offered; duplicate discrete keys are allowed to
// coexist, so the planner must guard against re-expanding an
// already-closed key when it pops a stale duplicate.
type NonUpdatingOpenList struct {
	heap *Heap[State]
}

// NewNonUpdatingOpenList builds an empty non-updating open list.
func NewNonUpdatingOpenList() *NonUpdatingOpenList {
	return &NonUpdatingOpenList{heap: NewHeap(func(a, b State) bool { return a.Better(b) })}
}

func (o *NonUpdatingOpenList) Empty() bool { return o.heap.Empty() }
func (o *NonUpdatingOpenList) Len() int    { return o.heap.Len() }

func (o *NonUpdatingOpenList) SupportsUpdate() bool { return false }

// Insert always pushes state and reports isNew true; existing is the
// same state just inserted, since there is no keyed lookup to share.
func (o *NonUpdatingOpenList) Insert(state State) (existing *State, isNew bool) {
	o.heap.Push(state)
	return &state, true
}

// Pop removes and returns the best live state, which may be a stale
// duplicate of an already-closed key; the planner is responsible for
// discarding those.
func (o *NonUpdatingOpenList) Pop() State {
	return o.heap.Pop()
}
