package search

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"
)

var errBoom = errors.New("boom")

var quiet = WithLogger(slog.New(slog.DiscardHandler))

type testEdge struct {
	to   string
	cost float64
}

// graphProblem is an explicit directed graph with string states and actions
// named "from->to".
type graphProblem struct {
	start     string
	goals     map[string]bool
	adjacency map[string][]testEdge
	order     []string

	failActionsOn string
	failResultOn  string

	actionCalls int
	goalCalls   int
}

func newGraphProblem(start string, goals ...string) *graphProblem {
	problem := &graphProblem{
		start:     start,
		goals:     make(map[string]bool),
		adjacency: make(map[string][]testEdge),
	}
	for _, goal := range goals {
		problem.goals[goal] = true
	}
	problem.touch(start)
	return problem
}

func (problem *graphProblem) touch(state string) {
	if _, ok := problem.adjacency[state]; !ok {
		problem.adjacency[state] = nil
		problem.order = append(problem.order, state)
	}
}

func (problem *graphProblem) edge(from, to string, cost float64) *graphProblem {
	problem.touch(from)
	problem.touch(to)
	problem.adjacency[from] = append(problem.adjacency[from], testEdge{to: to, cost: cost})
	return problem
}

func actionName(from, to string) string { return from + "->" + to }

func (problem *graphProblem) InitialState() (string, error) { return problem.start, nil }

func (problem *graphProblem) Actions(node *Node[string, string]) ([]string, error) {
	problem.actionCalls++
	if problem.failActionsOn != "" && node.State() == problem.failActionsOn {
		return nil, errBoom
	}
	var actions []string
	for _, e := range problem.adjacency[node.State()] {
		actions = append(actions, actionName(node.State(), e.to))
	}
	return actions, nil
}

func (problem *graphProblem) find(action, state string) (testEdge, error) {
	for _, e := range problem.adjacency[state] {
		if actionName(state, e.to) == action {
			return e, nil
		}
	}
	return testEdge{}, fmt.Errorf("unknown action %q from %q", action, state)
}

func (problem *graphProblem) Result(action string, node *Node[string, string]) (string, error) {
	if problem.failResultOn != "" && node.State() == problem.failResultOn {
		return "", errBoom
	}
	e, err := problem.find(action, node.State())
	return e.to, err
}

func (problem *graphProblem) IsGoal(state string) (bool, error) {
	problem.goalCalls++
	return problem.goals[state], nil
}

func (problem *graphProblem) Cost(action, state string) (float64, error) {
	e, err := problem.find(action, state)
	return e.cost, err
}

// replay applies actions from the start and returns the final state and the
// accumulated cost.
func (problem *graphProblem) replay(actions []string) (string, float64, error) {
	state, total := problem.start, 0.0
	for _, action := range actions {
		e, err := problem.find(action, state)
		if err != nil {
			return "", 0, err
		}
		state, total = e.to, total+e.cost
	}
	return state, total, nil
}

// bellmanFord relaxes every edge |V| times from the start. weight maps an
// edge to its length.
func (problem *graphProblem) bellmanFord(weight func(testEdge) float64) (float64, bool) {
	dist := map[string]float64{problem.start: 0}
	for range problem.order {
		for _, from := range problem.order {
			d, ok := dist[from]
			if !ok {
				continue
			}
			for _, e := range problem.adjacency[from] {
				if current, seen := dist[e.to]; !seen || d+weight(e) < current {
					dist[e.to] = d + weight(e)
				}
			}
		}
	}
	best, found := math.Inf(1), false
	for goal := range problem.goals {
		if d, ok := dist[goal]; ok && d < best {
			best, found = d, true
		}
	}
	return best, found
}

func (problem *graphProblem) minHops() (int, bool) {
	hops, ok := problem.bellmanFord(func(testEdge) float64 { return 1 })
	return int(hops), ok
}

func (problem *graphProblem) minCost() (float64, bool) {
	return problem.bellmanFord(func(e testEdge) float64 { return e.cost })
}

// costToGoal is the exact remaining cost from every state that can reach a goal.
func (problem *graphProblem) costToGoal() map[string]float64 {
	dist := make(map[string]float64)
	for goal := range problem.goals {
		dist[goal] = 0
	}
	for range problem.order {
		for _, from := range problem.order {
			for _, e := range problem.adjacency[from] {
				d, ok := dist[e.to]
				if !ok {
					continue
				}
				if current, seen := dist[from]; !seen || d+e.cost < current {
					dist[from] = d + e.cost
				}
			}
		}
	}
	return dist
}

// randomGraph builds a graph over n states with roughly density*n*n edges
// and integer costs in [1, 9].
func randomGraph(seed int64, n int, density float64) *graphProblem {
	r := rand.New(rand.NewSource(seed))
	states := make([]string, n)
	for i := range states {
		states[i] = fmt.Sprintf("s%d", i)
	}
	problem := newGraphProblem(states[0], states[1+r.Intn(n-1)])
	for _, s := range states {
		problem.touch(s)
	}
	for _, from := range states {
		targets := append([]string(nil), states...)
		sort.Strings(targets)
		for _, to := range targets {
			if from != to && r.Float64() < density {
				problem.edge(from, to, float64(1+r.Intn(9)))
			}
		}
	}
	return problem
}
