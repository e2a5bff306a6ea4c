package search

import (
	"context"
	"log/slog"
)

// IterativeDeepening runs depth-limited search with limits 0, 1, 2, ... up to
// Options.MaxDepth (inclusive, unbounded by default) and returns the first
// solution. With uniform action costs the solution has as few actions as the
// one BFS finds.
//
// A round that ends in Failure rather than Cutoff proves that no deeper
// round can succeed, so the run stops there.
type IterativeDeepening[StateType comparable, ActionType any] struct {
	options Options
	guard   runGuard
}

func NewIterativeDeepening[StateType comparable, ActionType any](options ...Option) *IterativeDeepening[StateType, ActionType] {
	return &IterativeDeepening[StateType, ActionType]{options: applyOptions(options)}
}

func (ids *IterativeDeepening[StateType, ActionType]) Name() string { return NameIterativeDeepening }

// Reset is a no-op: each round builds its own descent state.
func (ids *IterativeDeepening[StateType, ActionType]) Reset() {}

func (ids *IterativeDeepening[StateType, ActionType]) Solve(ctx context.Context, problem Problem[StateType, ActionType]) (Result[ActionType], error) {
	if problem == nil {
		return Result[ActionType]{}, ErrNilProblem
	}
	if err := ids.guard.acquire(); err != nil {
		return Result[ActionType]{}, err
	}
	defer ids.guard.release()

	return observeSolve(ctx, ids.Name(), ids.options.Logger, func(ctx context.Context) (Result[ActionType], error) {
		return ids.search(ctx, problem)
	})
}

func (ids *IterativeDeepening[StateType, ActionType]) search(ctx context.Context, problem Problem[StateType, ActionType]) (Result[ActionType], error) {
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

	budget := ids.options.budget()
	for limit := 0; ids.options.MaxDepth == Unbounded || limit <= ids.options.MaxDepth; limit++ {
		if err := ctx.Err(); err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}

		round, err := descend(ctx, problem, root, limit, &budget)
		if err != nil {
			return unsolvedResult[ActionType](Failure, budget.used), err
		}
		ids.options.Logger.Debug("deepening round finished",
			slog.Int("limit", limit),
			slog.String("outcome", round.Outcome.String()),
			slog.Int("expanded", round.ExpandedNodes))

		switch round.Outcome {
		case Solved:
			round.ExpandedNodes = budget.used
			return round, nil
		case Failure:
			return unsolvedResult[ActionType](Failure, budget.used), nil
		}
		if budget.exhausted() {
			break
		}
	}

	return unsolvedResult[ActionType](Cutoff, budget.used), nil
}
