package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/problems/graph"
	"github.com/pdrpinto/search/problems/grid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	solveStrategy      string
	solveLimit         int
	solveMaxExpansions int
	solveFormat        string
	solveOutput        string
	solveTimeout       time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve <problem-file>",
	Short: "Solve a problem file",
	Long: `Solve a graph or grid problem described in YAML.

The "kind" field selects the problem type. Graph problems list a start state,
goal states and weighted edges. Grid problems carry an ASCII drawing with
'S' for the start, 'G' for the goal, '#' for walls and '.' for open cells.

Examples:
  statesearch solve romania.yaml
  statesearch solve romania.yaml --strategy ucs --format json
  statesearch solve maze.yaml --strategy dls --limit 12`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveStrategy, "strategy", search.NameAStar, "Strategy: bfs, dfs, dls, ids, ucs, astar")
	solveCmd.Flags().IntVar(&solveLimit, "limit", -1, "Depth limit for dls, maximum depth for ids (negative: unbounded ids)")
	solveCmd.Flags().IntVar(&solveMaxExpansions, "max-expansions", 0, "Stop after this many expansions (0: no cap)")
	solveCmd.Flags().StringVar(&solveFormat, "format", "text", "Output format: text, json")
	solveCmd.Flags().StringVar(&solveOutput, "output", "", "Output file (default: stdout)")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Abort the search after this long (0: no timeout)")
}

// problemFile holds the fields shared by every problem kind.
type problemFile struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
	Grid string `yaml:"grid"`
}

// solveReport is what solve prints.
type solveReport struct {
	RunID    string   `json:"run_id"`
	Problem  string   `json:"problem"`
	Kind     string   `json:"kind"`
	Strategy string   `json:"strategy"`
	Outcome  string   `json:"outcome"`
	Cost     float64  `json:"cost"`
	Expanded int      `json:"expanded"`
	Actions  []string `json:"actions"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read problem file: %w", err)
	}

	var header problemFile
	if err := yaml.Unmarshal(data, &header); err != nil {
		return fmt.Errorf("failed to parse problem file: %w", err)
	}

	ctx := commandContext(cmd)
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	var report solveReport
	switch header.Kind {
	case "", "graph":
		problem, err := graph.Parse(data)
		if err != nil {
			return fmt.Errorf("failed to load graph problem: %w", err)
		}
		report, err = solveWith(ctx, problem, problem.Heuristic())
		if err != nil {
			return err
		}
		report.Problem, report.Kind = problem.Name(), "graph"
	case "grid":
		problem, err := grid.Parse(header.Grid)
		if err != nil {
			return fmt.Errorf("failed to load grid problem: %w", err)
		}
		report, err = solveWith(ctx, problem, problem.Manhattan())
		if err != nil {
			return err
		}
		report.Problem, report.Kind = header.Name, "grid"
	default:
		return fmt.Errorf("unsupported problem kind: %s (use 'graph' or 'grid')", header.Kind)
	}

	var output []byte
	switch solveFormat {
	case "text":
		output = []byte(report.text())
	case "json":
		output, err = json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to generate JSON: %w", err)
		}
		output = append(output, '\n')
	default:
		return fmt.Errorf("unsupported format: %s (use 'text' or 'json')", solveFormat)
	}

	if solveOutput != "" {
		if err := os.WriteFile(solveOutput, output, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("result written", "path", solveOutput)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(output)
	return err
}

func solveWith[StateType comparable, ActionType any](
	ctx context.Context,
	problem search.Problem[StateType, ActionType],
	heuristic search.Heuristic[StateType, ActionType],
) (solveReport, error) {
	strategy, err := newStrategy(solveStrategy, heuristic)
	if err != nil {
		return solveReport{}, err
	}

	var runID string
	agent := search.NewAgent(strategy,
		search.WithAgentLogger(logger),
		search.WithObserver(func(event search.StatusEvent) {
			runID = event.RunID.String()
		}),
	)

	result, err := agent.Solve(ctx, problem)
	if err != nil {
		return solveReport{}, fmt.Errorf("search failed: %w", err)
	}

	report := solveReport{
		RunID:    runID,
		Strategy: strategy.Name(),
		Outcome:  result.Outcome.String(),
		Expanded: result.ExpandedNodes,
		Actions:  make([]string, 0, len(result.Actions)),
	}
	if result.Found() {
		report.Cost = result.TotalCost
		for _, action := range result.Actions {
			report.Actions = append(report.Actions, fmt.Sprint(action))
		}
	}
	return report, nil
}

func newStrategy[StateType comparable, ActionType any](
	name string,
	heuristic search.Heuristic[StateType, ActionType],
) (search.Strategy[StateType, ActionType], error) {
	options := []search.Option{
		search.WithLogger(logger),
		search.WithMaxExpansions(solveMaxExpansions),
	}

	switch name {
	case search.NameBFS:
		return search.NewBFS[StateType, ActionType](options...), nil
	case search.NameDFS:
		return search.NewDFS[StateType, ActionType](options...), nil
	case search.NameDepthLimited:
		dls, err := search.NewDepthLimited[StateType, ActionType](solveLimit, options...)
		if err != nil {
			return nil, fmt.Errorf("dls needs --limit: %w", err)
		}
		return dls, nil
	case search.NameIterativeDeepening:
		options = append(options, search.WithMaxDepth(solveLimit))
		return search.NewIterativeDeepening[StateType, ActionType](options...), nil
	case search.NameUniformCost:
		return search.NewUniformCost[StateType, ActionType](options...), nil
	case search.NameAStar:
		return search.NewAStar(heuristic, options...), nil
	default:
		return nil, fmt.Errorf("unsupported strategy: %s", name)
	}
}

func (r solveReport) text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run:      %s\n", r.RunID)
	fmt.Fprintf(&b, "problem:  %s (%s)\n", r.Problem, r.Kind)
	fmt.Fprintf(&b, "strategy: %s\n", r.Strategy)
	fmt.Fprintf(&b, "outcome:  %s\n", r.Outcome)
	fmt.Fprintf(&b, "expanded: %d\n", r.Expanded)
	if r.Outcome != search.Solved.String() {
		return b.String()
	}
	fmt.Fprintf(&b, "cost:     %g\n", r.Cost)
	fmt.Fprintf(&b, "path (%d steps):\n", len(r.Actions))
	for i, action := range r.Actions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, action)
	}
	return b.String()
}
