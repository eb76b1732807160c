package gsp

// CloseList is the set of finalized discrete keys, each mapped to the
// state that closed it.
type CloseList struct {
	states map[DiscreteKey]*State
}

// NewCloseList builds an empty close list.
func NewCloseList() *CloseList {
	return &CloseList{states: make(map[DiscreteKey]*State)}
}

// Insert emplaces state by its key. inserted is false if the key was
// already closed, in which case stored points at the state that closed
// it first; the planner must not expand a state that fails to insert.
func (c *CloseList) Insert(state State) (stored *State, inserted bool) {
	if existing, found := c.states[state.Key]; found {
		return existing, false
	}
	s := state
	c.states[state.Key] = &s
	return &s, true
}

// Contains reports whether key has already been closed.
func (c *CloseList) Contains(key DiscreteKey) bool {
	_, found := c.states[key]
	return found
}

// Get returns the closed state for key, if any.
func (c *CloseList) Get(key DiscreteKey) (*State, bool) {
	s, found := c.states[key]
	return s, found
}

func (c *CloseList) Len() int { return len(c.states) }
