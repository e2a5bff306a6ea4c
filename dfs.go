package search

import "context"

// DFS is depth-first graph search. The popped node is goal-tested before it
// is expanded. Solutions are neither shortest nor cheapest in general.
type DFS[StateType comparable, ActionType any] struct {
	options  Options
	frontier *LIFOFrontier[StateType, ActionType]
	explored *ExploredSet[StateType]
	guard    runGuard
}

func NewDFS[StateType comparable, ActionType any](options ...Option) *DFS[StateType, ActionType] {
	return &DFS[StateType, ActionType]{
		options:  applyOptions(options),
		frontier: NewLIFOFrontier[StateType, ActionType](),
		explored: NewExploredSet[StateType](),
	}
}

func (dfs *DFS[StateType, ActionType]) Name() string { return NameDFS }

func (dfs *DFS[StateType, ActionType]) Reset() {
	dfs.frontier = NewLIFOFrontier[StateType, ActionType]()
	dfs.explored = NewExploredSet[StateType]()
}

func (dfs *DFS[StateType, ActionType]) Solve(ctx context.Context, problem Problem[StateType, ActionType]) (Result[ActionType], error) {
	if problem == nil {
		return Result[ActionType]{}, ErrNilProblem
	}
	if err := dfs.guard.acquire(); err != nil {
		return Result[ActionType]{}, err
	}
	defer dfs.guard.release()

	return observeSolve(ctx, dfs.Name(), dfs.options.Logger, func(ctx context.Context) (Result[ActionType], error) {
		return dfs.search(ctx, problem)
	})
}

func (dfs *DFS[StateType, ActionType]) search(ctx context.Context, problem Problem[StateType, ActionType]) (Result[ActionType], error) {
	initialState, err := problem.InitialState()
	if err != nil {
		return Result[ActionType]{}, err
	}
	dfs.frontier.Push(NewRoot[StateType, ActionType](initialState))

	budget := dfs.options.budget()
	for !dfs.frontier.Empty() {
		if err := ctx.Err(); err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}

		current, err := dfs.frontier.Pop()
		if err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}
		isGoal, err := problem.IsGoal(current.State())
		if err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}
		if isGoal {
			return solvedResult(current, budget.used), nil
		}
		if !dfs.explored.InsertIfAbsent(current.State()) {
			continue
		}
		if budget.exhausted() {
			return unsolvedResult[ActionType](Cutoff, budget.used), nil
		}

		children, err := expand(problem, current)
		if err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}
		budget.spend(newStep(current, dfs.frontier.Len(), dfs.explored.Len()))

		for _, child := range children {
			if !dfs.explored.Contains(child.State()) && !dfs.frontier.Contains(child.State()) {
				dfs.frontier.Push(child)
			}
		}
	}

	return unsolvedResult[ActionType](Failure, budget.used), nil
}
