package search

import (
	"container/heap"
	"fmt"
)

// Priority orders nodes in a PriorityFrontier; lower values pop first.
type Priority[StateType comparable, ActionType any] func(node *Node[StateType, ActionType]) float64

type PriorityQueueItem[StateType comparable, ActionType any] struct {
	Node     *Node[StateType, ActionType]
	Priority float64
}

// PriorityQueue is a binary min-heap over items with a position table
// state -> heap index that Swap keeps in step with every move.
type PriorityQueue[StateType comparable, ActionType any] struct {
	items     []PriorityQueueItem[StateType, ActionType]
	positions map[StateType]int
}

func (queue *PriorityQueue[StateType, ActionType]) Len() int { return len(queue.items) }

// Less is strict so an item only rises above an equal one that was pushed
// later, never above one pushed earlier.
func (queue *PriorityQueue[StateType, ActionType]) Less(i, j int) bool {
	return queue.items[i].Priority < queue.items[j].Priority
}

func (queue *PriorityQueue[StateType, ActionType]) Swap(i, j int) {
	queue.items[i], queue.items[j] = queue.items[j], queue.items[i]
	queue.positions[queue.items[i].Node.state] = i
	queue.positions[queue.items[j].Node.state] = j
}

func (queue *PriorityQueue[StateType, ActionType]) Push(x any) {
	item := x.(PriorityQueueItem[StateType, ActionType])
	queue.positions[item.Node.state] = len(queue.items)
	queue.items = append(queue.items, item)
}

func (queue *PriorityQueue[StateType, ActionType]) Pop() any {
	n := len(queue.items)
	item := queue.items[n-1]
	queue.items[n-1] = PriorityQueueItem[StateType, ActionType]{}
	queue.items = queue.items[:n-1]
	delete(queue.positions, item.Node.state)
	return item
}

// PriorityFrontier pops the node with the lowest priority first. It holds at
// most one node per state: pushing a node for a state already present
// replaces the waiting node.
type PriorityFrontier[StateType comparable, ActionType any] struct {
	queue    PriorityQueue[StateType, ActionType]
	priority Priority[StateType, ActionType]
}

// NewPriorityFrontier builds an empty frontier ordered by priority. The
// priority of a node is computed once, when it is pushed.
func NewPriorityFrontier[StateType comparable, ActionType any](priority Priority[StateType, ActionType]) *PriorityFrontier[StateType, ActionType] {
	return &PriorityFrontier[StateType, ActionType]{
		queue:    PriorityQueue[StateType, ActionType]{positions: make(map[StateType]int)},
		priority: priority,
	}
}

func (frontier *PriorityFrontier[StateType, ActionType]) Empty() bool { return frontier.queue.Len() == 0 }

func (frontier *PriorityFrontier[StateType, ActionType]) Len() int { return frontier.queue.Len() }

// Push inserts node. A node already waiting for the same state is replaced
// whatever its priority, so Push can raise the priority of a state; use
// PushIfBetter to only ever lower it.
func (frontier *PriorityFrontier[StateType, ActionType]) Push(node *Node[StateType, ActionType]) {
	if position, ok := frontier.queue.positions[node.state]; ok {
		heap.Remove(&frontier.queue, position)
	}
	heap.Push(&frontier.queue, PriorityQueueItem[StateType, ActionType]{
		Node:     node,
		Priority: frontier.priority(node),
	})
}

func (frontier *PriorityFrontier[StateType, ActionType]) Pop() (*Node[StateType, ActionType], error) {
	if frontier.Empty() {
		return nil, ErrFrontierEmpty
	}
	item := heap.Pop(&frontier.queue).(PriorityQueueItem[StateType, ActionType])
	return item.Node, nil
}

// Peek returns the next node without removing it.
func (frontier *PriorityFrontier[StateType, ActionType]) Peek() (*Node[StateType, ActionType], error) {
	if frontier.Empty() {
		return nil, ErrFrontierEmpty
	}
	return frontier.queue.items[0].Node, nil
}

func (frontier *PriorityFrontier[StateType, ActionType]) Contains(state StateType) bool {
	_, ok := frontier.queue.positions[state]
	return ok
}

// PushIfBetter is the decrease-key operation. If no node for node.State() is
// waiting it behaves like Push. If one is waiting with a strictly higher
// priority, that entry is removed and node is pushed in its place. Otherwise
// nothing changes. It reports whether node was pushed.
func (frontier *PriorityFrontier[StateType, ActionType]) PushIfBetter(node *Node[StateType, ActionType]) bool {
	position, ok := frontier.queue.positions[node.state]
	if !ok {
		frontier.Push(node)
		return true
	}
	priority := frontier.priority(node)
	if !(priority < frontier.queue.items[position].Priority) {
		return false
	}
	heap.Remove(&frontier.queue, position)
	heap.Push(&frontier.queue, PriorityQueueItem[StateType, ActionType]{Node: node, Priority: priority})
	return true
}

// verify checks the heap property and the position table.
func (frontier *PriorityFrontier[StateType, ActionType]) verify() error {
	items := frontier.queue.items
	if len(frontier.queue.positions) != len(items) {
		return fmt.Errorf("position table has %d entries for %d items", len(frontier.queue.positions), len(items))
	}
	for i, item := range items {
		if position, ok := frontier.queue.positions[item.Node.state]; !ok || position != i {
			return fmt.Errorf("state %v at index %d mapped to %d (present=%v)", item.Node.state, i, position, ok)
		}
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if child < len(items) && items[child].Priority < item.Priority {
				return fmt.Errorf("heap property violated between %d (%v) and %d (%v)", i, item.Priority, child, items[child].Priority)
			}
		}
	}
	return nil
}
