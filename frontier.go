package search

// Frontier holds generated nodes that have not been expanded yet.
type Frontier[StateType comparable, ActionType any] interface {
	Empty() bool
	Len() int
	Push(node *Node[StateType, ActionType])
	// Pop removes and returns the next node to expand, or ErrFrontierEmpty.
	Pop() (*Node[StateType, ActionType], error)
	// Contains reports whether a node for state is waiting in the frontier.
	Contains(state StateType) bool
}

// stateIndex counts frontier entries per state so Contains stays O(1) while
// the primary collection is a plain slice.
type stateIndex[StateType comparable] map[StateType]int

func (index stateIndex[StateType]) add(state StateType) { index[state]++ }

func (index stateIndex[StateType]) remove(state StateType) {
	if index[state] <= 1 {
		delete(index, state)
		return
	}
	index[state]--
}

// FIFOFrontier pops nodes in the order they were pushed.
type FIFOFrontier[StateType comparable, ActionType any] struct {
	queue []*Node[StateType, ActionType]
	head  int
	index stateIndex[StateType]
}

func NewFIFOFrontier[StateType comparable, ActionType any]() *FIFOFrontier[StateType, ActionType] {
	return &FIFOFrontier[StateType, ActionType]{index: make(stateIndex[StateType])}
}

func (frontier *FIFOFrontier[StateType, ActionType]) Empty() bool { return frontier.Len() == 0 }

func (frontier *FIFOFrontier[StateType, ActionType]) Len() int { return len(frontier.queue) - frontier.head }

func (frontier *FIFOFrontier[StateType, ActionType]) Push(node *Node[StateType, ActionType]) {
	frontier.queue = append(frontier.queue, node)
	frontier.index.add(node.state)
}

func (frontier *FIFOFrontier[StateType, ActionType]) Pop() (*Node[StateType, ActionType], error) {
	if frontier.Empty() {
		return nil, ErrFrontierEmpty
	}
	node := frontier.queue[frontier.head]
	frontier.queue[frontier.head] = nil
	frontier.head++
	// compact once the consumed prefix dominates the backing array
	if frontier.head > 64 && frontier.head*2 >= len(frontier.queue) {
		frontier.queue = append(frontier.queue[:0], frontier.queue[frontier.head:]...)
		frontier.head = 0
	}
	frontier.index.remove(node.state)
	return node, nil
}

func (frontier *FIFOFrontier[StateType, ActionType]) Contains(state StateType) bool {
	_, ok := frontier.index[state]
	return ok
}

// LIFOFrontier pops the most recently pushed node first.
type LIFOFrontier[StateType comparable, ActionType any] struct {
	stack []*Node[StateType, ActionType]
	index stateIndex[StateType]
}

func NewLIFOFrontier[StateType comparable, ActionType any]() *LIFOFrontier[StateType, ActionType] {
	return &LIFOFrontier[StateType, ActionType]{index: make(stateIndex[StateType])}
}

func (frontier *LIFOFrontier[StateType, ActionType]) Empty() bool { return len(frontier.stack) == 0 }

func (frontier *LIFOFrontier[StateType, ActionType]) Len() int { return len(frontier.stack) }

func (frontier *LIFOFrontier[StateType, ActionType]) Push(node *Node[StateType, ActionType]) {
	frontier.stack = append(frontier.stack, node)
	frontier.index.add(node.state)
}

func (frontier *LIFOFrontier[StateType, ActionType]) Pop() (*Node[StateType, ActionType], error) {
	n := len(frontier.stack)
	if n == 0 {
		return nil, ErrFrontierEmpty
	}
	node := frontier.stack[n-1]
	frontier.stack[n-1] = nil
	frontier.stack = frontier.stack[:n-1]
	frontier.index.remove(node.state)
	return node, nil
}

func (frontier *LIFOFrontier[StateType, ActionType]) Contains(state StateType) bool {
	_, ok := frontier.index[state]
	return ok
}
