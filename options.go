package search

import "log/slog"

// Unbounded disables the depth bound of IterativeDeepening.
const Unbounded = -1

// Options defines parameters shared by all strategies.
type Options struct {
	// Logger receives run-level events. Defaults to slog.Default().
	Logger *slog.Logger

	// MaxDepth bounds the depth limits tried by IterativeDeepening
	// (inclusive). Unbounded by default.
	MaxDepth int

	// MaxExpansions caps the number of node expansions per run. A run that
	// hits the cap ends with Outcome Cutoff. Zero means no cap.
	MaxExpansions int

	// StepHook, when set, observes every expansion.
	StepHook StepHook
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) {
		if logger != nil {
			options.Logger = logger
		}
	}
}

// WithMaxDepth sets the deepest limit IterativeDeepening will try.
// Negative values mean unbounded.
func WithMaxDepth(depth int) Option {
	return func(options *Options) {
		if depth < 0 {
			options.MaxDepth = Unbounded
		} else {
			options.MaxDepth = depth
		}
	}
}

// WithMaxExpansions caps node expansions per run. Values <= 0 remove the cap.
func WithMaxExpansions(expansions int) Option {
	return func(options *Options) {
		if expansions < 0 {
			expansions = 0
		}
		options.MaxExpansions = expansions
	}
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Logger:   slog.Default(),
		MaxDepth: Unbounded,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// expansionBudget counts expansions against Options.MaxExpansions and
// reports each one to Options.StepHook.
type expansionBudget struct {
	limit int
	used  int
	hook  StepHook
}

func (options Options) budget() expansionBudget {
	return expansionBudget{limit: options.MaxExpansions, hook: options.StepHook}
}

func (budget *expansionBudget) exhausted() bool {
	return budget.limit > 0 && budget.used >= budget.limit
}

func (budget *expansionBudget) spend(step Step) {
	budget.used++
	if budget.hook != nil {
		step.Index = budget.used
		budget.hook(step)
	}
}
