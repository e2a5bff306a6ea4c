package search

import "context"

// BFS is breadth-first graph search. Successors are goal-tested as they are
// generated, so with uniform action costs the first solution found uses the
// fewest actions.
type BFS[StateType comparable, ActionType any] struct {
	options  Options
	frontier *FIFOFrontier[StateType, ActionType]
	explored *ExploredSet[StateType]
	guard    runGuard
}

func NewBFS[StateType comparable, ActionType any](options ...Option) *BFS[StateType, ActionType] {
	return &BFS[StateType, ActionType]{
		options:  applyOptions(options),
		frontier: NewFIFOFrontier[StateType, ActionType](),
		explored: NewExploredSet[StateType](),
	}
}

func (bfs *BFS[StateType, ActionType]) Name() string { return NameBFS }

func (bfs *BFS[StateType, ActionType]) Reset() {
	bfs.frontier = NewFIFOFrontier[StateType, ActionType]()
	bfs.explored = NewExploredSet[StateType]()
}

func (bfs *BFS[StateType, ActionType]) Solve(ctx context.Context, problem Problem[StateType, ActionType]) (Result[ActionType], error) {
	if problem == nil {
		return Result[ActionType]{}, ErrNilProblem
	}
	if err := bfs.guard.acquire(); err != nil {
		return Result[ActionType]{}, err
	}
	defer bfs.guard.release()

	return observeSolve(ctx, bfs.Name(), bfs.options.Logger, func(ctx context.Context) (Result[ActionType], error) {
		return bfs.search(ctx, problem)
	})
}

func (bfs *BFS[StateType, ActionType]) search(ctx context.Context, problem Problem[StateType, ActionType]) (Result[ActionType], error) {
	initialState, err := problem.InitialState()
	if err != nil {
		return Result[ActionType]{}, err
	}
	root := NewRoot[StateType, ActionType](initialState)
	if isGoal, err := problem.IsGoal(initialState); err != nil {
		return Result[ActionType]{}, err
	} else if isGoal {
		return solvedResult(root, 0), nil
	}
	bfs.frontier.Push(root)

	budget := bfs.options.budget()
	for !bfs.frontier.Empty() {
		if err := ctx.Err(); err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}
		if budget.exhausted() {
			return unsolvedResult[ActionType](Cutoff, budget.used), nil
		}

		current, err := bfs.frontier.Pop()
		if err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}
		if !bfs.explored.InsertIfAbsent(current.State()) {
			continue
		}

		actions, err := problem.Actions(current)
		if err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}
		budget.spend(newStep(current, bfs.frontier.Len(), bfs.explored.Len()))

		for _, action := range actions {
			child, err := NewChild(problem, current, action)
			if err != nil {
				return unsolvedResult[ActionType](Failure, budget.used), err
			}
			isGoal, err := problem.IsGoal(child.State())
			if err != nil {
				return unsolvedResult[ActionType](Failure, budget.used), err
			}
			if isGoal {
				return solvedResult(child, budget.used), nil
			}
			if !bfs.explored.Contains(child.State()) && !bfs.frontier.Contains(child.State()) {
				bfs.frontier.Push(child)
			}
		}
	}

	return unsolvedResult[ActionType](Failure, budget.used), nil
}
