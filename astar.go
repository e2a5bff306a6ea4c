package search

import "context"

// AStar is best-first graph search ordered by f = g + h, where g is the path
// cost of a node and h the heuristic estimate of what remains. When a cheaper
// path to a state already waiting in the frontier turns up, the waiting entry
// is replaced (decrease-key). With non-negative costs and a heuristic that
// never overestimates, the first goal popped is a cheapest one.
type AStar[StateType comparable, ActionType any] struct {
	name      string
	options   Options
	heuristic Heuristic[StateType, ActionType]
	frontier  *PriorityFrontier[StateType, ActionType]
	explored  *ExploredSet[StateType]
	guard     runGuard

	optimalCost    float64
	hasOptimalCost bool
}

// NewAStar returns an A* search guided by heuristic. A nil heuristic is
// treated as ZeroHeuristic.
func NewAStar[StateType comparable, ActionType any](heuristic Heuristic[StateType, ActionType], options ...Option) *AStar[StateType, ActionType] {
	return newAStar(NameAStar, heuristic, options)
}

func newAStar[StateType comparable, ActionType any](name string, heuristic Heuristic[StateType, ActionType], options []Option) *AStar[StateType, ActionType] {
	if heuristic == nil {
		heuristic = ZeroHeuristic[StateType, ActionType]
	}
	astar := &AStar[StateType, ActionType]{
		name:      name,
		options:   applyOptions(options),
		heuristic: heuristic,
	}
	astar.Reset()
	return astar
}

func (astar *AStar[StateType, ActionType]) Name() string { return astar.name }

func (astar *AStar[StateType, ActionType]) Reset() {
	heuristic := astar.heuristic
	astar.frontier = NewPriorityFrontier[StateType, ActionType](func(node *Node[StateType, ActionType]) float64 {
		return node.Cost() + heuristic(node)
	})
	astar.explored = NewExploredSet[StateType]()
	astar.optimalCost = 0
	astar.hasOptimalCost = false
}

// OptimalCost returns the cost of the solution found by the last run, if any.
func (astar *AStar[StateType, ActionType]) OptimalCost() (float64, bool) {
	return astar.optimalCost, astar.hasOptimalCost
}

func (astar *AStar[StateType, ActionType]) Solve(ctx context.Context, problem Problem[StateType, ActionType]) (Result[ActionType], error) {
	if problem == nil {
		return Result[ActionType]{}, ErrNilProblem
	}
	if err := astar.guard.acquire(); err != nil {
		return Result[ActionType]{}, err
	}
	defer astar.guard.release()

	return observeSolve(ctx, astar.Name(), astar.options.Logger, func(ctx context.Context) (Result[ActionType], error) {
		return astar.search(ctx, problem)
	})
}

func (astar *AStar[StateType, ActionType]) search(ctx context.Context, problem Problem[StateType, ActionType]) (Result[ActionType], error) {
	initialState, err := problem.InitialState()
	if err != nil {
		return Result[ActionType]{}, err
	}
	astar.frontier.Push(NewRoot[StateType, ActionType](initialState))

	budget := astar.options.budget()
	for !astar.frontier.Empty() {
		if err := ctx.Err(); err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}

		current, err := astar.frontier.Pop()
		if err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}
		isGoal, err := problem.IsGoal(current.State())
		if err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}
		if isGoal {
			astar.optimalCost = current.Cost()
			astar.hasOptimalCost = true
			return solvedResult(current, budget.used), nil
		}
		if !astar.explored.InsertIfAbsent(current.State()) {
			continue
		}
		if budget.exhausted() {
			return unsolvedResult[ActionType](Cutoff, budget.used), nil
		}

		children, err := expand(problem, current)
		if err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}
		budget.spend(newStep(current, astar.frontier.Len(), astar.explored.Len()))

		for _, child := range children {
			state := child.State()
			switch {
			case astar.explored.Contains(state):
			case astar.frontier.Contains(state):
				astar.frontier.PushIfBetter(child)
			default:
				astar.frontier.Push(child)
			}
		}
	}

	return unsolvedResult[ActionType](Failure, budget.used), nil
}

// UniformCost expands nodes in order of path cost. It is A* with a zero
// heuristic and returns a cheapest solution whenever costs are non-negative.
type UniformCost[StateType comparable, ActionType any] struct {
	*AStar[StateType, ActionType]
}

func NewUniformCost[StateType comparable, ActionType any](options ...Option) *UniformCost[StateType, ActionType] {
	return &UniformCost[StateType, ActionType]{
		AStar: newAStar(NameUniformCost, ZeroHeuristic[StateType, ActionType], options),
	}
}
