package search

// Outcome classifies how a search run ended.
type Outcome int

const (
	// Failure means the reachable state space was exhausted without a goal.
	Failure Outcome = iota
	// Cutoff means the run stopped because of a depth limit or an expansion
	// budget; a larger bound could still find a solution.
	Cutoff
	// Solved means a goal was reached.
	Solved
)

func (o Outcome) String() string {
	switch o {
	case Failure:
		return "failure"
	case Cutoff:
		return "cutoff"
	case Solved:
		return "solved"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a search.
type Result[ActionType any] struct {
	// Actions leads from the initial state to a goal. It is empty (not nil)
	// when the initial state is already a goal and nil when nothing was found.
	Actions       []ActionType
	TotalCost     float64
	ExpandedNodes int
	Outcome       Outcome
}

// Found reports whether the run reached a goal.
func (r Result[ActionType]) Found() bool { return r.Outcome == Solved }

func solvedResult[StateType comparable, ActionType any](node *Node[StateType, ActionType], expanded int) Result[ActionType] {
	return Result[ActionType]{
		Actions:       node.Path(),
		TotalCost:     node.Cost(),
		ExpandedNodes: expanded,
		Outcome:       Solved,
	}
}

func unsolvedResult[ActionType any](outcome Outcome, expanded int) Result[ActionType] {
	return Result[ActionType]{ExpandedNodes: expanded, Outcome: outcome}
}
