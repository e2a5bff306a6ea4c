package search

import "errors"

// Sentinel errors raised by the engine itself. Errors returned by a Problem
// are passed through to the caller untouched and are never one of these.
var (
	// ErrFrontierEmpty is returned by Frontier.Pop when there is nothing left
	// to expand.
	ErrFrontierEmpty = errors.New("frontier is empty")

	// ErrInvalidCost is returned when a Problem reports a negative, NaN or
	// infinite action cost.
	ErrInvalidCost = errors.New("invalid action cost")

	// ErrSolveInProgress is returned when Solve is called on a strategy that
	// is already running.
	ErrSolveInProgress = errors.New("solve already in progress")

	// ErrNilStrategy is returned when an Agent has no strategy to run.
	ErrNilStrategy = errors.New("strategy is nil")

	// ErrNilProblem is returned when Solve receives a nil problem.
	ErrNilProblem = errors.New("problem is nil")

	// ErrNegativeLimit is returned when a depth-limited search is built with
	// a limit below zero.
	ErrNegativeLimit = errors.New("depth limit must be non-negative")
)
