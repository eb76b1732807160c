package gsp

import (
	"context"
	"testing"

	"github.com/jvaillant/tinysea-go/quantity"
)

// gridKey builds the discrete key for an abstract (x,y) grid cell, with
// the time bucket and Z axis unused.
func gridKey(x, y int64) DiscreteKey {
	return DiscreteKey{T: 0, X: x, Y: y, Z: 0}
}

func gridState(x, y int64, g float64) State {
	return State{Key: gridKey(x, y), G: quantity.Cost(g), F: quantity.Cost(g)}
}

// gridExpander is the abstract-graph analog from the planner's own
// debugging scenarios: 4-directional moves on a bounded grid, cost 1 per
// step, with a fixed set of blocked cells.
type gridExpander struct {
	size      int64
	obstacles map[DiscreteKey]bool
}

func newGridExpander(size int64, obstacles ...[2]int64) *gridExpander {
	blocked := make(map[DiscreteKey]bool, len(obstacles))
	for _, o := range obstacles {
		blocked[gridKey(o[0], o[1])] = true
	}
	return &gridExpander{size: size, obstacles: blocked}
}

func (e *gridExpander) Search(s State) []State {
	var out []State
	for _, d := range [][2]int64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
		x, y := s.Key.X+d[0], s.Key.Y+d[1]
		if x < 0 || x >= e.size || y < 0 || y >= e.size {
			continue
		}
		k := gridKey(x, y)
		if e.obstacles[k] {
			continue
		}
		out = append(out, gridState(x, y, float64(s.G)+1))
	}
	return out
}

// countingUpdatable wraps UpdatableOpenList to record insert/update call
// counts the way the planner's own debugging scenarios are specified.
type countingUpdatable struct {
	*UpdatableOpenList
	nrInsert, nrUpdate int
}

func newCountingUpdatable() *countingUpdatable {
	return &countingUpdatable{UpdatableOpenList: NewUpdatableOpenList()}
}

func (o *countingUpdatable) Insert(state State) (*State, bool) {
	o.nrInsert++
	return o.UpdatableOpenList.Insert(state)
}

func (o *countingUpdatable) Update(existing *State, newState State) {
	o.nrUpdate++
	o.UpdatableOpenList.Update(existing, newState)
}

type countingNonUpdating struct {
	*NonUpdatingOpenList
	nrInsert int
}

func newCountingNonUpdating() *countingNonUpdating {
	return &countingNonUpdating{NonUpdatingOpenList: NewNonUpdatingOpenList()}
}

func (o *countingNonUpdating) Insert(state State) (*State, bool) {
	o.nrInsert++
	return o.NonUpdatingOpenList.Insert(state)
}

// TestPlannerOpenGrid is S1: a 3x3 grid with no obstacles, one seed at
// (0,0), goal (2,2). Grounded on the original's TEST_short1: the
// updatable variant closes all 9 cells with 9 inserts, 13 open inserts
// (12 plus the seed) and zero updates, ending with an empty open list.
func TestPlannerOpenGrid(t *testing.T) {
	open := newCountingUpdatable()
	open.Insert(gridState(0, 0, 0))

	close := NewCloseList()
	p := &Planner{}
	got, err := p.FindShortestPath(context.Background(), gridState(2, 2, 0), open, close, newGridExpander(3))
	if err != nil {
		t.Fatalf("FindShortestPath: %v", err)
	}
	if got == nil {
		t.Fatal("expected success, got nil state")
	}

	if close.Len() != 9 {
		t.Errorf("close list size = %d, want 9", close.Len())
	}
	if open.nrInsert != 12+1 {
		t.Errorf("open inserts = %d, want 13", open.nrInsert)
	}
	if open.nrUpdate != 0 {
		t.Errorf("open updates = %d, want 0", open.nrUpdate)
	}
	if !open.Empty() {
		t.Errorf("open list not empty at end: len=%d", open.Len())
	}
}

// TestPlannerOpenGridNonUpdating is the same grid against the
// non-updating variant, grounded on TEST_short_nu_1: four cells — (1,1),
// (1,2), (2,1) and (2,2) — are discovered twice. The stale copies of the
// first three are popped and rejected, so the close list sees 12 inserts
// for 9 distinct keys, and the spare copy of (2,2) is left stranded in the
// open list at the end.
func TestPlannerOpenGridNonUpdating(t *testing.T) {
	open := newCountingNonUpdating()
	open.Insert(gridState(0, 0, 0))

	close := NewCloseList()
	p := &Planner{}
	got, err := p.FindShortestPath(context.Background(), gridState(2, 2, 0), open, close, newGridExpander(3))
	if err != nil {
		t.Fatalf("FindShortestPath: %v", err)
	}
	if got == nil {
		t.Fatal("expected success, got nil state")
	}

	if close.Len() != 9 {
		t.Errorf("close list size = %d, want 9", close.Len())
	}
	if open.nrInsert != 12+1 {
		t.Errorf("open inserts = %d, want 13", open.nrInsert)
	}
	if open.Len() != 1 {
		t.Errorf("open list residual size = %d, want 1", open.Len())
	}
}

// TestPlannerObstacleGrid is S2: a detour forced by obstacles at (0,1)
// and (1,1). Grounded on TEST_short2: only the x=2 column is ever
// reachable without revisiting a cell, so there are no duplicate
// discoveries and no updates.
func TestPlannerObstacleGrid(t *testing.T) {
	open := newCountingUpdatable()
	open.Insert(gridState(0, 0, 0))

	close := NewCloseList()
	expander := newGridExpander(3, [2]int64{0, 1}, [2]int64{1, 1})
	p := &Planner{}
	got, err := p.FindShortestPath(context.Background(), gridState(2, 2, 0), open, close, expander)
	if err != nil {
		t.Fatalf("FindShortestPath: %v", err)
	}
	if got == nil {
		t.Fatal("expected success, got nil state")
	}

	if close.Len() != 5 {
		t.Errorf("close list size = %d, want 5", close.Len())
	}
	if open.nrInsert != 4+1 {
		t.Errorf("open inserts = %d, want 5", open.nrInsert)
	}
	if open.nrUpdate != 0 {
		t.Errorf("open updates = %d, want 0", open.nrUpdate)
	}
	if !open.Empty() {
		t.Errorf("open list not empty at end: len=%d", open.Len())
	}
}

// TestPlannerTwoSeeds is S3: two seeds, (0,0) at g=0 and (0,2) at the
// deliberately-too-high g=4. Grounded on TEST_short3: the second seed is
// later reached via (0,1)->(0,2) at g=2, strictly better than its own
// seed value, producing exactly one update call.
func TestPlannerTwoSeeds(t *testing.T) {
	open := newCountingUpdatable()
	open.Insert(gridState(0, 0, 0))
	open.Insert(gridState(0, 2, 4))

	close := NewCloseList()
	p := &Planner{}
	got, err := p.FindShortestPath(context.Background(), gridState(2, 2, 0), open, close, newGridExpander(3))
	if err != nil {
		t.Fatalf("FindShortestPath: %v", err)
	}
	if got == nil {
		t.Fatal("expected success, got nil state")
	}

	if close.Len() != 9 {
		t.Errorf("close list size = %d, want 9", close.Len())
	}
	if open.nrInsert != 12+2 {
		t.Errorf("open inserts = %d, want 14", open.nrInsert)
	}
	if open.nrUpdate != 1 {
		t.Errorf("open updates = %d, want 1", open.nrUpdate)
	}
	if !open.Empty() {
		t.Errorf("open list not empty at end: len=%d", open.Len())
	}
}

// TestPlannerTwoSeedsNonUpdating mirrors TEST_short_nu_3: the same
// two-seed grid against the non-updating variant leaves two residual
// open entries, the superseded (0,2) seed and a spare copy of the goal
// cell (2,2), both at f=4 like the goal itself, and produces 12
// close-list inserts for 9 distinct keys.
func TestPlannerTwoSeedsNonUpdating(t *testing.T) {
	open := newCountingNonUpdating()
	open.Insert(gridState(0, 0, 0))
	open.Insert(gridState(0, 2, 4))

	close := NewCloseList()
	p := &Planner{}
	got, err := p.FindShortestPath(context.Background(), gridState(2, 2, 0), open, close, newGridExpander(3))
	if err != nil {
		t.Fatalf("FindShortestPath: %v", err)
	}
	if got == nil {
		t.Fatal("expected success, got nil state")
	}

	if close.Len() != 9 {
		t.Errorf("close list size = %d, want 9", close.Len())
	}
	if open.nrInsert != 12+2 {
		t.Errorf("open inserts = %d, want 14", open.nrInsert)
	}
	if open.Len() != 2 {
		t.Errorf("open list residual size = %d, want 2", open.Len())
	}
}

// TestPlannerContextCancelled checks the host-level budget wrapper:
// an already-cancelled context aborts the search immediately.
func TestPlannerContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	open := NewUpdatableOpenList()
	open.Insert(gridState(0, 0, 0))
	close := NewCloseList()
	p := &Planner{}

	_, err := p.FindShortestPath(ctx, gridState(2, 2, 0), open, close, newGridExpander(3))
	if err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}

// TestPlannerMaxSteps checks the step-budget wrapper aborts with
// ErrBudgetExceeded once exhausted, rather than running unbounded.
func TestPlannerMaxSteps(t *testing.T) {
	open := NewUpdatableOpenList()
	open.Insert(gridState(0, 0, 0))
	close := NewCloseList()
	p := &Planner{MaxSteps: 1}

	_, err := p.FindShortestPath(context.Background(), gridState(2, 2, 0), open, close, newGridExpander(3))
	if err != ErrBudgetExceeded {
		t.Fatalf("err = %v, want ErrBudgetExceeded", err)
	}
}
