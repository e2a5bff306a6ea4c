package search

import (
	"context"
	"sync/atomic"
)

// Strategy names returned by Strategy.Name.
const (
	NameBFS                = "bfs"
	NameDFS                = "dfs"
	NameDepthLimited       = "dls"
	NameIterativeDeepening = "ids"
	NameUniformCost        = "ucs"
	NameAStar              = "astar"
)

// Strategy searches a Problem for a sequence of actions reaching a goal.
//
// Solve returns a Result whose Outcome is Solved when a goal was reached.
// Not finding a solution is not an error. A non-nil error is either an error
// returned by the problem, passed through unchanged, or one of the sentinel
// errors of this package, or ctx.Err().
//
// Reset discards the frontier and explored set left by a previous run.
type Strategy[StateType comparable, ActionType any] interface {
	Solve(ctx context.Context, problem Problem[StateType, ActionType]) (Result[ActionType], error)
	Reset()
	Name() string
}

// runGuard rejects overlapping Solve calls on one instance.
type runGuard struct {
	running atomic.Bool
}

func (guard *runGuard) acquire() error {
	if !guard.running.CompareAndSwap(false, true) {
		return ErrSolveInProgress
	}
	return nil
}

func (guard *runGuard) release() { guard.running.Store(false) }

// expand lists the successors of node. Errors come straight from problem.
func expand[StateType comparable, ActionType any](
	problem Problem[StateType, ActionType],
	node *Node[StateType, ActionType],
) ([]*Node[StateType, ActionType], error) {
	actions, err := problem.Actions(node)
	if err != nil {
		return nil, err
	}
	children := make([]*Node[StateType, ActionType], 0, len(actions))
	for _, action := range actions {
		child, err := NewChild(problem, node, action)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
