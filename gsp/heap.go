package gsp

// Observer is notified of every structural move the heap makes, which is
// the load-bearing abstraction that lets the updatable open list keep an
// external index-by-key in sync with the heap's internal reordering and
// so support O(log n) decrease-key. Most ecosystem priority queues have
// no comparable hook; this heap is rolled by hand specifically to expose
// one.
type Observer interface {
	// BeforeSwap is called before the heap swaps the elements currently
	// at indices i and j.
	BeforeSwap(i, j int)
	// AfterEmplace is called after a push lands at index k.
	AfterEmplace(k int)
	// BeforeErase is called before the element at the last index m is
	// dropped by a pop.
	BeforeErase(m int)
}

// NullObserver implements Observer with no-ops, for callers that don't
// need decrease-key.
type NullObserver struct{}

func (NullObserver) BeforeSwap(i, j int) {}
func (NullObserver) AfterEmplace(k int)  {}
func (NullObserver) BeforeErase(m int)   {}

// Heap is a classical 0-indexed binary min-heap over an arbitrary payload
// type, parameterized by a strict less-than comparator.
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
	obs  Observer
}

// NewHeap builds an empty heap with the given strict less-than comparator
// and a NullObserver.
func NewHeap[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less, obs: NullObserver{}}
}

// SetObserver installs o as the heap's observer.
func (h *Heap[T]) SetObserver(o Observer) { h.obs = o }

// GetObserver returns the heap's current observer.
func (h *Heap[T]) GetObserver() Observer { return h.obs }

func (h *Heap[T]) Len() int     { return len(h.data) }
func (h *Heap[T]) Empty() bool  { return len(h.data) == 0 }
func (h *Heap[T]) Top() T       { return h.data[0] }

// Container exposes the heap's backing slice read-only; callers must not
// mutate it directly — use Push/Pop/Decrease.
func (h *Heap[T]) Container() []T { return h.data }

// Push inserts v and bubbles it up into place.
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	k := len(h.data) - 1
	h.obs.AfterEmplace(k)
	h.siftUp(k)
}

// Pop removes and returns the minimum element, swapping root with last
// then sifting down to the smaller child.
func (h *Heap[T]) Pop() T {
	top := h.data[0]
	last := len(h.data) - 1
	h.obs.BeforeErase(last)
	h.swap(0, last)
	h.data = h.data[:last]
	if len(h.data) > 0 {
		h.siftDown(0)
	}
	return top
}

// Decrease restores heap order after the caller has already lowered
// v[i] in place.
func (h *Heap[T]) Decrease(i int) {
	h.siftUp(i)
}

// DecreaseTo writes v at index i then restores heap order. Panics if v is
// greater than the value it replaces — decrease must never increase a
// value.
func (h *Heap[T]) DecreaseTo(i int, v T) {
	if h.less(h.data[i], v) {
		panic("gsp: heap decrease to a greater value")
	}
	h.data[i] = v
	h.Decrease(i)
}

func (h *Heap[T]) swap(i, j int) {
	if i == j {
		return
	}
	h.obs.BeforeSwap(i, j)
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(h.data[i], h.data[p]) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		if l < n && h.less(h.data[l], h.data[smallest]) {
			smallest = l
		}
		if r < n && h.less(h.data[r], h.data[smallest]) {
			smallest = r
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
}
