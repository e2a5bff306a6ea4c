package search

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Status is the coarse state of an Agent.
type Status int

const (
	StatusReady Status = iota
	StatusPending
	StatusCompleted
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "READY"
	case StatusPending:
		return "PENDING"
	case StatusCompleted:
		return "COMPLETED"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StatusEvent describes one status transition of an Agent run.
type StatusEvent struct {
	RunID    uuid.UUID
	Strategy string
	Status   Status
	// Err is set for StatusError only.
	Err error
}

// Observer is called synchronously on every status transition, before Solve
// returns. It must not call back into the Agent's Solve.
type Observer func(StatusEvent)

// AgentOption configures an Agent.
type AgentOption func(*agentConfig)

type agentConfig struct {
	observer Observer
	logger   *slog.Logger
}

// WithObserver registers the status observer.
func WithObserver(observer Observer) AgentOption {
	return func(config *agentConfig) { config.observer = observer }
}

// WithAgentLogger sets the logger used for status transitions.
func WithAgentLogger(logger *slog.Logger) AgentOption {
	return func(config *agentConfig) {
		if logger != nil {
			config.logger = logger
		}
	}
}

// Agent runs a strategy on problems and tracks the status of the latest run.
// Status may be read from any goroutine; Solve must not overlap with itself.
type Agent[StateType comparable, ActionType any] struct {
	mu       sync.RWMutex
	strategy Strategy[StateType, ActionType]
	status   Status
	config   agentConfig
}

func NewAgent[StateType comparable, ActionType any](strategy Strategy[StateType, ActionType], options ...AgentOption) *Agent[StateType, ActionType] {
	config := agentConfig{logger: slog.Default()}
	for _, option := range options {
		option(&config)
	}
	return &Agent[StateType, ActionType]{
		strategy: strategy,
		status:   StatusReady,
		config:   config,
	}
}

func (agent *Agent[StateType, ActionType]) Status() Status {
	agent.mu.RLock()
	defer agent.mu.RUnlock()
	return agent.status
}

func (agent *Agent[StateType, ActionType]) Strategy() Strategy[StateType, ActionType] {
	agent.mu.RLock()
	defer agent.mu.RUnlock()
	return agent.strategy
}

func (agent *Agent[StateType, ActionType]) SetStrategy(strategy Strategy[StateType, ActionType]) {
	agent.mu.Lock()
	defer agent.mu.Unlock()
	agent.strategy = strategy
}

// Solve resets the strategy and runs it on problem. The observer sees
// PENDING before the search starts and COMPLETED or ERROR after it ends.
// The result and error are exactly those of the strategy.
func (agent *Agent[StateType, ActionType]) Solve(ctx context.Context, problem Problem[StateType, ActionType]) (Result[ActionType], error) {
	strategy := agent.Strategy()
	if strategy == nil {
		return Result[ActionType]{}, ErrNilStrategy
	}
	runID := uuid.New()

	strategy.Reset()
	agent.transition(runID, strategy.Name(), StatusPending, nil)

	result, err := strategy.Solve(ctx, problem)
	if err != nil {
		agent.transition(runID, strategy.Name(), StatusError, err)
		return result, err
	}
	agent.transition(runID, strategy.Name(), StatusCompleted, nil)
	return result, nil
}

func (agent *Agent[StateType, ActionType]) transition(runID uuid.UUID, strategy string, status Status, err error) {
	agent.mu.Lock()
	agent.status = status
	agent.mu.Unlock()

	agent.config.logger.Debug("agent status changed",
		slog.String("run_id", runID.String()),
		slog.String("strategy", strategy),
		slog.String("status", status.String()))

	if agent.config.observer != nil {
		agent.config.observer(StatusEvent{
			RunID:    runID,
			Strategy: strategy,
			Status:   status,
			Err:      err,
		})
	}
}
