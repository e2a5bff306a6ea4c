// Package graph loads explicit weighted graphs from YAML and exposes them as
// search problems whose states are node names and whose actions are edge
// labels.
package graph

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/search"
)

// ErrUnknownAction is returned when an action does not label an edge leaving
// the given state.
var ErrUnknownAction = errors.New("unknown action")

var specValidate = validator.New()

// Spec is the YAML representation of a graph problem.
type Spec struct {
	Name      string             `yaml:"name" validate:"required"`
	Start     string             `yaml:"start" validate:"required"`
	Goals     []string           `yaml:"goals" validate:"required,min=1,dive,required"`
	Edges     []EdgeSpec         `yaml:"edges" validate:"dive"`
	Heuristic map[string]float64 `yaml:"heuristic,omitempty" validate:"dive,gte=0"`
}

// EdgeSpec is one directed edge. Cost defaults to 1 and Action to "from->to".
type EdgeSpec struct {
	From   string   `yaml:"from" validate:"required"`
	To     string   `yaml:"to" validate:"required"`
	Cost   *float64 `yaml:"cost,omitempty" validate:"omitnil,gte=0"`
	Action string   `yaml:"action,omitempty"`
}

func (e EdgeSpec) label() string {
	if e.Action != "" {
		return e.Action
	}
	return e.From + "->" + e.To
}

func (e EdgeSpec) cost() float64 {
	if e.Cost == nil {
		return 1
	}
	return *e.Cost
}

// Validate checks the struct tags, then that no state has two edges with the
// same action label.
func (s *Spec) Validate() error {
	if err := specValidate.Struct(s); err != nil {
		return fmt.Errorf("invalid graph spec: %w", err)
	}

	labels := make(map[string]map[string]bool)
	for _, edge := range s.Edges {
		if labels[edge.From] == nil {
			labels[edge.From] = make(map[string]bool)
		}
		if labels[edge.From][edge.label()] {
			return fmt.Errorf("duplicate action %q from %q", edge.label(), edge.From)
		}
		labels[edge.From][edge.label()] = true
	}
	return nil
}

type edge struct {
	to   string
	cost float64
}

// Problem is a search.Problem over a Spec.
type Problem struct {
	spec      Spec
	goals     map[string]bool
	actions   map[string][]string
	edges     map[string]map[string]edge
	heuristic map[string]float64
}

var _ search.Problem[string, string] = (*Problem)(nil)

// Load reads and validates a graph problem from a YAML file.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a graph problem from YAML.
func Parse(data []byte) (*Problem, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return New(spec)
}

// New builds a Problem from spec after validating it.
func New(spec Spec) (*Problem, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	problem := &Problem{
		spec:      spec,
		goals:     make(map[string]bool, len(spec.Goals)),
		actions:   make(map[string][]string),
		edges:     make(map[string]map[string]edge),
		heuristic: spec.Heuristic,
	}
	for _, goal := range spec.Goals {
		problem.goals[goal] = true
	}
	for _, e := range spec.Edges {
		label := e.label()
		if problem.edges[e.From] == nil {
			problem.edges[e.From] = make(map[string]edge)
		}
		problem.edges[e.From][label] = edge{to: e.To, cost: e.cost()}
		problem.actions[e.From] = append(problem.actions[e.From], label)
	}
	return problem, nil
}

func (p *Problem) Name() string { return p.spec.Name }

func (p *Problem) Spec() Spec { return p.spec }

func (p *Problem) InitialState() (string, error) { return p.spec.Start, nil }

// Actions lists edge labels leaving the node's state in file order.
func (p *Problem) Actions(node *search.Node[string, string]) ([]string, error) {
	return p.actions[node.State()], nil
}

func (p *Problem) Result(action string, node *search.Node[string, string]) (string, error) {
	e, err := p.lookup(action, node.State())
	if err != nil {
		return "", err
	}
	return e.to, nil
}

func (p *Problem) IsGoal(state string) (bool, error) { return p.goals[state], nil }

func (p *Problem) Cost(action string, state string) (float64, error) {
	e, err := p.lookup(action, state)
	if err != nil {
		return 0, err
	}
	return e.cost, nil
}

func (p *Problem) lookup(action, state string) (edge, error) {
	e, ok := p.edges[state][action]
	if !ok {
		return edge{}, fmt.Errorf("%w %q from %q", ErrUnknownAction, action, state)
	}
	return e, nil
}

// Heuristic returns the estimates listed in the problem file; unlisted states
// estimate to zero.
func (p *Problem) Heuristic() search.Heuristic[string, string] {
	return func(node *search.Node[string, string]) float64 {
		return p.heuristic[node.State()]
	}
}
