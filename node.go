package search

import (
	"fmt"
	"math"

	"github.com/pdrpinto/search/internal"
)

// Node is one entry of the search tree: a state together with the action and
// parent that produced it. Nodes are immutable once built. A node shares its
// parent with its siblings and never has more than one parent, so following
// Parent links always yields the unique path that produced it.
//
// Frontiers and explored sets key nodes by State alone.
type Node[StateType comparable, ActionType any] struct {
	state  StateType
	action ActionType
	parent *Node[StateType, ActionType]
	cost   float64
	depth  int
}

// NewRoot returns the root node for state: depth 0, cost 0, no parent and no action.
func NewRoot[StateType comparable, ActionType any](state StateType) *Node[StateType, ActionType] {
	return &Node[StateType, ActionType]{state: state}
}

// NewChild applies action to parent through problem and returns the resulting
// node. Errors from problem.Result and problem.Cost are returned unchanged.
func NewChild[StateType comparable, ActionType any](
	problem Problem[StateType, ActionType],
	parent *Node[StateType, ActionType],
	action ActionType,
) (*Node[StateType, ActionType], error) {
	state, err := problem.Result(action, parent)
	if err != nil {
		return nil, err
	}
	stepCost, err := problem.Cost(action, parent.state)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(stepCost) || math.IsInf(stepCost, 0) || stepCost < 0 {
		return nil, fmt.Errorf("%w: %v at depth %d", ErrInvalidCost, stepCost, parent.depth)
	}
	return &Node[StateType, ActionType]{
		state:  state,
		action: action,
		parent: parent,
		cost:   parent.cost + stepCost,
		depth:  parent.depth + 1,
	}, nil
}

func (node *Node[StateType, ActionType]) State() StateType { return node.state }

// Action returns the action that produced the node. ok is false for the root.
func (node *Node[StateType, ActionType]) Action() (action ActionType, ok bool) {
	return node.action, node.parent != nil
}

// Parent returns the node this one was expanded from, or nil for the root.
func (node *Node[StateType, ActionType]) Parent() *Node[StateType, ActionType] { return node.parent }

// Cost is the sum of action costs from the root.
func (node *Node[StateType, ActionType]) Cost() float64 { return node.cost }

func (node *Node[StateType, ActionType]) Depth() int { return node.depth }

func (node *Node[StateType, ActionType]) IsRoot() bool { return node.parent == nil }

// Path returns the actions leading from the root to node, in order.
// The root yields an empty, non-nil slice.
func (node *Node[StateType, ActionType]) Path() []ActionType {
	return internal.ReconstructPath(node, func(current *Node[StateType, ActionType]) (ActionType, *Node[StateType, ActionType], bool) {
		return current.action, current.parent, current.parent != nil
	})
}
