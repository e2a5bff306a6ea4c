package search

// Step is a snapshot of one node expansion, taken after the node was removed
// from the frontier and before its successors are generated.
type Step struct {
	// Index counts expansions within the run, starting at 1. It keeps
	// counting across the rounds of IterativeDeepening.
	Index int
	State any
	Depth int
	Cost  float64
	// Frontier is the number of nodes waiting in the frontier. For the
	// depth-limited strategies it is the length of the current descent path.
	Frontier int
	// Explored is the size of the explored set; zero for the depth-limited
	// strategies, which keep none.
	Explored int
}

// StepHook is called synchronously for every expansion.
type StepHook func(Step)

// WithStepHook installs a hook that observes each expansion.
func WithStepHook(hook StepHook) Option {
	return func(options *Options) { options.StepHook = hook }
}

func newStep[StateType comparable, ActionType any](node *Node[StateType, ActionType], frontier, explored int) Step {
	return Step{
		State:    node.State(),
		Depth:    node.Depth(),
		Cost:     node.Cost(),
		Frontier: frontier,
		Explored: explored,
	}
}
