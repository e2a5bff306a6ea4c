package search

// ExploredSet records the states already expanded during one run.
// States are never removed until the set is discarded.
type ExploredSet[StateType comparable] struct {
	states map[StateType]struct{}
}

func NewExploredSet[StateType comparable]() *ExploredSet[StateType] {
	return &ExploredSet[StateType]{states: make(map[StateType]struct{})}
}

func (set *ExploredSet[StateType]) Contains(state StateType) bool {
	_, ok := set.states[state]
	return ok
}

// Insert adds state. Inserting a present state is a no-op.
func (set *ExploredSet[StateType]) Insert(state StateType) {
	set.states[state] = struct{}{}
}

// InsertIfAbsent adds state and reports whether it was not already present.
func (set *ExploredSet[StateType]) InsertIfAbsent(state StateType) bool {
	if _, ok := set.states[state]; ok {
		return false
	}
	set.states[state] = struct{}{}
	return true
}

func (set *ExploredSet[StateType]) Len() int { return len(set.states) }
