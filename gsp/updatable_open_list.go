package gsp

// cell is the payload stored in the updatable open list's heap: a state
// plus its own current index into the heap, kept in sync by the heap
// observer protocol below.
type cell struct {
	state     State
	heapIndex int
}

// UpdatableOpenList pairs a map, keyed by discrete key, with a min-heap
// of cell pointers. The heap's observer keeps each cell's heapIndex
// current across every push/pop/swap, which is what makes Update an
// O(log n) decrease-key instead of a linear search.
type UpdatableOpenList struct {
	byKey map[DiscreteKey]*cell
	heap  *Heap[*cell]
}

// NewUpdatableOpenList builds an empty updatable open list.
func NewUpdatableOpenList() *UpdatableOpenList {
	o := &UpdatableOpenList{byKey: make(map[DiscreteKey]*cell)}
	o.heap = NewHeap(func(a, b *cell) bool { return a.state.Better(b.state) })
	o.heap.SetObserver(o)
	return o
}

func (o *UpdatableOpenList) Empty() bool { return o.heap.Empty() }
func (o *UpdatableOpenList) Len() int    { return o.heap.Len() }

func (o *UpdatableOpenList) SupportsUpdate() bool { return true }

// Insert tries to emplace state by its key. On first insertion it pushes
// the new cell onto the heap and returns (state, true); on collision it
// returns the existing cell's state pointer and false, doing nothing to
// the heap.
func (o *UpdatableOpenList) Insert(state State) (existing *State, isNew bool) {
	if c, found := o.byKey[state.Key]; found {
		return &c.state, false
	}
	c := &cell{state: state, heapIndex: -1}
	o.byKey[state.Key] = c
	o.heap.Push(c)
	return &c.state, true
}

// Update overwrites the cell behind existing with newState and restores
// heap order via decrease-key. Panics if newState is not strictly better
// than the state it replaces, since that would silently corrupt the heap.
func (o *UpdatableOpenList) Update(existing *State, newState State) {
	if !newState.Better(*existing) {
		panic("gsp: open list update requires a strictly better state")
	}
	c, found := o.byKey[newState.Key]
	if !found || &c.state != existing {
		panic("gsp: open list update called with an iterator it does not own")
	}
	c.state = newState
	o.heap.Decrease(c.heapIndex)
}

// Pop removes and returns the best live state.
func (o *UpdatableOpenList) Pop() State {
	c := o.heap.Pop()
	delete(o.byKey, c.state.Key)
	return c.state
}

// BeforeSwap, AfterEmplace and BeforeErase implement Observer, keeping
// every cell's heapIndex field equal to its actual position in the heap.
func (o *UpdatableOpenList) BeforeSwap(i, j int) {
	c := o.heap.Container()
	c[i].heapIndex, c[j].heapIndex = j, i
}

func (o *UpdatableOpenList) AfterEmplace(k int) {
	o.heap.Container()[k].heapIndex = k
}

func (o *UpdatableOpenList) BeforeErase(m int) {}
