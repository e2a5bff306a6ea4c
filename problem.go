package search

// Problem describes a search problem over states of type StateType reached
// through actions of type ActionType.
// StateType must be comparable so it can be used in maps; two states are the
// same state exactly when they compare equal.
//
// Any error returned by these methods aborts the running search and is
// returned from Solve as is. The engine never retries a failed call.
type Problem[StateType comparable, ActionType any] interface {
	// InitialState returns the state the search starts from.
	InitialState() (StateType, error)

	// Actions lists the actions legal from node's state. The order of the
	// slice is the order successors are generated in, so it also decides
	// ties between equally good successors.
	Actions(node *Node[StateType, ActionType]) ([]ActionType, error)

	// Result returns the state reached by applying action to node's state.
	// It must depend only on action and node.State().
	Result(action ActionType, node *Node[StateType, ActionType]) (StateType, error)

	// IsGoal reports whether state satisfies the goal.
	IsGoal(state StateType) (bool, error)

	// Cost returns the cost of applying action in state. It must be finite
	// and non-negative.
	Cost(action ActionType, state StateType) (float64, error)
}

// Heuristic estimates the remaining cost from node to the nearest goal.
// A* only returns optimal solutions when the estimate never exceeds the true
// remaining cost.
type Heuristic[StateType comparable, ActionType any] func(node *Node[StateType, ActionType]) float64

// ZeroHeuristic estimates every remaining cost as zero.
func ZeroHeuristic[StateType comparable, ActionType any](*Node[StateType, ActionType]) float64 {
	return 0
}
