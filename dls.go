package search

import (
	"context"
	"fmt"
)

// DepthLimited is depth-first tree search that never goes deeper than Limit
// actions from the root. It keeps no explored set, so it may revisit states
// along different paths.
//
// The run distinguishes Cutoff (some branch was pruned by the limit, so a
// larger limit might help) from Failure (every branch ended without reaching
// the limit, so no larger limit can help). A solved branch ends the run at
// once; otherwise a cutoff in any branch makes the whole subtree a cutoff.
//
// The descent runs on an explicit frame stack, so memory grows with Limit but
// the goroutine stack does not.
type DepthLimited[StateType comparable, ActionType any] struct {
	options Options
	limit   int
	guard   runGuard
}

// NewDepthLimited returns a depth-limited search. limit must be >= 0.
func NewDepthLimited[StateType comparable, ActionType any](limit int, options ...Option) (*DepthLimited[StateType, ActionType], error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, limit)
	}
	return &DepthLimited[StateType, ActionType]{
		options: applyOptions(options),
		limit:   limit,
	}, nil
}

func (dls *DepthLimited[StateType, ActionType]) Name() string { return NameDepthLimited }

func (dls *DepthLimited[StateType, ActionType]) Limit() int { return dls.limit }

// Reset is a no-op: a depth-limited run keeps no state between calls.
func (dls *DepthLimited[StateType, ActionType]) Reset() {}

func (dls *DepthLimited[StateType, ActionType]) Solve(ctx context.Context, problem Problem[StateType, ActionType]) (Result[ActionType], error) {
	if problem == nil {
		return Result[ActionType]{}, ErrNilProblem
	}
	if err := dls.guard.acquire(); err != nil {
		return Result[ActionType]{}, err
	}
	defer dls.guard.release()

	return observeSolve(ctx, dls.Name(), dls.options.Logger, func(ctx context.Context) (Result[ActionType], error) {
		initialState, err := problem.InitialState()
		if err != nil {
			return Result[ActionType]{}, err
		}
		budget := dls.options.budget()
		return descend(ctx, problem, NewRoot[StateType, ActionType](initialState), dls.limit, &budget)
	})
}

// dlsFrame is one node on the current descent path whose successors are
// being visited in order.
type dlsFrame[StateType comparable, ActionType any] struct {
	node    *Node[StateType, ActionType]
	actions []ActionType
	next    int
	cutoff  bool
}

// descend runs one depth-limited search from root. Expansions are charged to
// budget, which is shared across rounds by IterativeDeepening; running out
// counts as a cutoff.
func descend[StateType comparable, ActionType any](
	ctx context.Context,
	problem Problem[StateType, ActionType],
	root *Node[StateType, ActionType],
	limit int,
	budget *expansionBudget,
) (Result[ActionType], error) {
	startUsed := budget.used
	var stack []dlsFrame[StateType, ActionType]

	// visit goal-tests node and, when it may go deeper, opens a frame for it.
	visit := func(node *Node[StateType, ActionType]) (Outcome, bool, error) {
		isGoal, err := problem.IsGoal(node.State())
		if err != nil {
			return Failure, false, err
		}
		if isGoal {
			return Solved, false, nil
		}
		if node.Depth() >= limit || budget.exhausted() {
			return Cutoff, false, nil
		}
		actions, err := problem.Actions(node)
		if err != nil {
			return Failure, false, err
		}
		budget.spend(newStep(node, len(stack), 0))
		stack = append(stack, dlsFrame[StateType, ActionType]{node: node, actions: actions})
		return Failure, true, nil
	}

	expanded := func() int { return budget.used - startUsed }

	outcome, opened, err := visit(root)
	if err != nil {
		return unsolvedResult[ActionType](Failure, expanded()), err
	}
	if !opened {
		if outcome == Solved {
			return solvedResult(root, expanded()), nil
		}
		return unsolvedResult[ActionType](outcome, expanded()), nil
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return unsolvedResult[ActionType](Failure, expanded()), err
		}

		top := &stack[len(stack)-1]
		if top.next == len(top.actions) {
			finished := Failure
			if top.cutoff {
				finished = Cutoff
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return unsolvedResult[ActionType](finished, expanded()), nil
			}
			if finished == Cutoff {
				stack[len(stack)-1].cutoff = true
			}
			continue
		}

		action := top.actions[top.next]
		top.next++
		child, err := NewChild(problem, top.node, action)
		if err != nil {
			return unsolvedResult[ActionType](Failure, expanded()), err
		}

		outcome, opened, err := visit(child)
		if err != nil {
			return unsolvedResult[ActionType](Failure, expanded()), err
		}
		if opened {
			continue
		}
		switch outcome {
		case Solved:
			return solvedResult(child, expanded()), nil
		case Cutoff:
			stack[len(stack)-1].cutoff = true
		}
	}

	return unsolvedResult[ActionType](Failure, expanded()), nil
}
