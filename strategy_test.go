package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedStrategy struct {
	name     string
	strategy Strategy[string, string]
}

// graphStrategies returns the strategies that search the whole graph.
func graphStrategies() []namedStrategy {
	return []namedStrategy{
		{"bfs", NewBFS[string, string](quiet)},
		{"dfs", NewDFS[string, string](quiet)},
		{"ucs", NewUniformCost[string, string](quiet)},
		{"astar", NewAStar[string, string](nil, quiet)},
	}
}

func chainProblem() *graphProblem {
	return newGraphProblem("A", "C").edge("A", "B", 1).edge("B", "C", 1)
}

func TestStrategies_Chain(t *testing.T) {
	for _, tc := range graphStrategies() {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.strategy.Solve(context.Background(), chainProblem())
			require.NoError(t, err)
			assert.Equal(t, Solved, result.Outcome)
			assert.True(t, result.Found())
			assert.Equal(t, []string{"A->B", "B->C"}, result.Actions)
			assert.Equal(t, 2.0, result.TotalCost)
			assert.Equal(t, tc.name, tc.strategy.Name())
		})
	}

	t.Run("ids", func(t *testing.T) {
		result, err := NewIterativeDeepening[string, string](quiet).Solve(context.Background(), chainProblem())
		require.NoError(t, err)
		assert.Equal(t, []string{"A->B", "B->C"}, result.Actions)
	})
}

func TestStrategies_InitialStateIsGoal(t *testing.T) {
	problem := func() *graphProblem { return newGraphProblem("A", "A").edge("A", "B", 1) }

	for _, tc := range graphStrategies() {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.strategy.Solve(context.Background(), problem())
			require.NoError(t, err)
			assert.True(t, result.Found())
			require.NotNil(t, result.Actions)
			assert.Empty(t, result.Actions)
		})
	}

	t.Run("ids does not descend", func(t *testing.T) {
		p := problem()
		result, err := NewIterativeDeepening[string, string](quiet).Solve(context.Background(), p)
		require.NoError(t, err)
		assert.True(t, result.Found())
		require.NotNil(t, result.Actions)
		assert.Empty(t, result.Actions)
		assert.Zero(t, p.actionCalls)
		assert.Equal(t, 1, p.goalCalls)
	})
}

func TestStrategies_Unreachable(t *testing.T) {
	problem := func() *graphProblem {
		return newGraphProblem("A", "Z").
			edge("A", "B", 1).edge("B", "C", 1).edge("C", "A", 1).edge("B", "D", 2).
			edge("Z", "A", 1)
	}

	for _, tc := range graphStrategies() {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.strategy.Solve(context.Background(), problem())
			require.NoError(t, err)
			assert.Equal(t, Failure, result.Outcome)
			assert.Nil(t, result.Actions)
			assert.Equal(t, 4, result.ExpandedNodes)
		})
	}

	t.Run("dls never fabricates a solution", func(t *testing.T) {
		for limit := 0; limit < 8; limit++ {
			dls, err := NewDepthLimited[string, string](limit, quiet)
			require.NoError(t, err)
			result, err := dls.Solve(context.Background(), problem())
			require.NoError(t, err)
			assert.NotEqual(t, Solved, result.Outcome, "limit %d", limit)
			assert.Nil(t, result.Actions)
		}
	})

	t.Run("ids stops at max depth", func(t *testing.T) {
		result, err := NewIterativeDeepening[string, string](quiet, WithMaxDepth(6)).Solve(context.Background(), problem())
		require.NoError(t, err)
		assert.Equal(t, Cutoff, result.Outcome)
	})
}

func TestDepthLimited_CutoffVersusFailure(t *testing.T) {
	// A -> B -> C with no goal and no cycle.
	problem := func() *graphProblem { return newGraphProblem("A", "Z").edge("A", "B", 1).edge("B", "C", 1) }

	tests := []struct {
		limit int
		want  Outcome
	}{
		{0, Cutoff},
		{1, Cutoff},
		{2, Cutoff},
		{3, Failure},
		{10, Failure},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("limit %d", tt.limit), func(t *testing.T) {
			dls, err := NewDepthLimited[string, string](tt.limit, quiet)
			require.NoError(t, err)
			result, err := dls.Solve(context.Background(), problem())
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Outcome)
		})
	}

	t.Run("ids stops on failure", func(t *testing.T) {
		p := problem()
		result, err := NewIterativeDeepening[string, string](quiet).Solve(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, Failure, result.Outcome)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := NewDepthLimited[string, string](-1)
		assert.ErrorIs(t, err, ErrNegativeLimit)
	})
}

func TestDepthLimited_SolvedShortCircuitsCutoff(t *testing.T) {
	// The first branch is deep and gets cut off; the second reaches the goal.
	problem := newGraphProblem("A", "G").
		edge("A", "B", 1).edge("B", "C", 1).edge("C", "D", 1).
		edge("A", "G", 1)

	dls, err := NewDepthLimited[string, string](2, quiet)
	require.NoError(t, err)
	result, err := dls.Solve(context.Background(), problem)
	require.NoError(t, err)
	assert.Equal(t, Solved, result.Outcome)
	assert.Equal(t, []string{"A->G"}, result.Actions)
	assert.Equal(t, 2, dls.Limit())
}

func TestStrategies_RandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		problem := randomGraph(seed, 12, 0.18)
		hops, reachable := problem.minHops()
		cheapest, _ := problem.minCost()

		ctx := context.Background()
		bfs, err := NewBFS[string, string](quiet).Solve(ctx, problem)
		require.NoError(t, err)
		require.Equal(t, reachable, bfs.Found(), "seed %d", seed)

		maxDepth := 4
		if reachable {
			maxDepth = hops
		}
		ids, err := NewIterativeDeepening[string, string](quiet, WithMaxDepth(maxDepth)).Solve(ctx, problem)
		require.NoError(t, err)
		require.Equal(t, reachable, ids.Found(), "seed %d", seed)

		ucsStrategy := NewUniformCost[string, string](quiet)
		ucs, err := ucsStrategy.Solve(ctx, problem)
		require.NoError(t, err)

		astar0, err := NewAStar[string, string](ZeroHeuristic[string, string], quiet).Solve(ctx, problem)
		require.NoError(t, err)

		remaining := problem.costToGoal()
		admissible := func(node *Node[string, string]) float64 { return remaining[node.State()] / 2 }
		astarH, err := NewAStar[string, string](admissible, quiet).Solve(ctx, problem)
		require.NoError(t, err)

		dfs, err := NewDFS[string, string](quiet).Solve(ctx, problem)
		require.NoError(t, err)
		require.Equal(t, reachable, dfs.Found(), "seed %d", seed)

		if !reachable {
			for _, result := range []Result[string]{bfs, ucs, astar0, astarH, dfs} {
				assert.Equal(t, Failure, result.Outcome, "seed %d", seed)
			}
			assert.NotEqual(t, Solved, ids.Outcome, "seed %d", seed)
			continue
		}

		assert.Len(t, bfs.Actions, hops, "seed %d bfs", seed)
		assert.Len(t, ids.Actions, hops, "seed %d ids", seed)
		assert.Equal(t, cheapest, ucs.TotalCost, "seed %d ucs", seed)
		assert.Equal(t, ucs.TotalCost, astar0.TotalCost, "seed %d astar zero", seed)
		assert.Equal(t, cheapest, astarH.TotalCost, "seed %d astar", seed)

		optimal, ok := ucsStrategy.OptimalCost()
		assert.True(t, ok)
		assert.Equal(t, cheapest, optimal)

		for name, result := range map[string]Result[string]{"bfs": bfs, "ids": ids, "ucs": ucs, "astar": astarH, "dfs": dfs} {
			final, total, err := problem.replay(result.Actions)
			require.NoError(t, err, "seed %d %s", seed, name)
			assert.True(t, problem.goals[final], "seed %d %s ends in %s", seed, name, final)
			assert.Equal(t, total, result.TotalCost, "seed %d %s", seed, name)
		}

		for limit := 0; limit <= hops+1; limit++ {
			dls, err := NewDepthLimited[string, string](limit, quiet)
			require.NoError(t, err)
			result, err := dls.Solve(ctx, problem)
			require.NoError(t, err)
			if limit < hops {
				assert.Equal(t, Cutoff, result.Outcome, "seed %d limit %d", seed, limit)
				continue
			}
			assert.Equal(t, Solved, result.Outcome, "seed %d limit %d", seed, limit)
			assert.LessOrEqual(t, len(result.Actions), limit)
		}
	}
}

func TestAStar_DecreaseKey(t *testing.T) {
	// B is first reached through the expensive edge, then relaxed via C.
	problem := newGraphProblem("A", "G").
		edge("A", "B", 10).edge("A", "C", 1).
		edge("C", "B", 1).edge("B", "G", 1)

	astar := NewAStar[string, string](nil, quiet)
	result, err := astar.Solve(context.Background(), problem)
	require.NoError(t, err)
	assert.Equal(t, []string{"A->C", "C->B", "B->G"}, result.Actions)
	assert.Equal(t, 3.0, result.TotalCost)

	cost, ok := astar.OptimalCost()
	assert.True(t, ok)
	assert.Equal(t, 3.0, cost)

	astar.Reset()
	_, ok = astar.OptimalCost()
	assert.False(t, ok)
}

func TestStrategies_ProblemFailurePropagates(t *testing.T) {
	newProblem := func() *graphProblem {
		p := chainProblem()
		p.failActionsOn = "B"
		return p
	}

	strategies := append(graphStrategies(), namedStrategy{"ids", NewIterativeDeepening[string, string](quiet)})
	dls, err := NewDepthLimited[string, string](5, quiet)
	require.NoError(t, err)
	strategies = append(strategies, namedStrategy{"dls", dls})

	for _, tc := range strategies {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.strategy.Solve(context.Background(), newProblem())
			assert.Equal(t, errBoom, err)
			assert.False(t, result.Found())
		})
	}
}

func TestStrategies_InvalidCost(t *testing.T) {
	problem := newGraphProblem("A", "B").edge("A", "B", -3)
	_, err := NewUniformCost[string, string](quiet).Solve(context.Background(), problem)
	assert.ErrorIs(t, err, ErrInvalidCost)
}

func TestStrategies_NilProblem(t *testing.T) {
	for _, tc := range graphStrategies() {
		_, err := tc.strategy.Solve(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNilProblem, tc.name)
	}
}

func TestStrategies_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	strategies := append(graphStrategies(), namedStrategy{"ids", NewIterativeDeepening[string, string](quiet)})
	for _, tc := range strategies {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.strategy.Solve(ctx, chainProblem())
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestStrategies_MaxExpansions(t *testing.T) {
	problem := func() *graphProblem {
		return newGraphProblem("A", "E").edge("A", "B", 1).edge("B", "C", 1).edge("C", "D", 1).edge("D", "E", 1)
	}

	strategies := []namedStrategy{
		{"bfs", NewBFS[string, string](quiet, WithMaxExpansions(2))},
		{"dfs", NewDFS[string, string](quiet, WithMaxExpansions(2))},
		{"astar", NewAStar[string, string](nil, quiet, WithMaxExpansions(2))},
		{"ids", NewIterativeDeepening[string, string](quiet, WithMaxExpansions(2))},
	}
	for _, tc := range strategies {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.strategy.Solve(context.Background(), problem())
			require.NoError(t, err)
			assert.Equal(t, Cutoff, result.Outcome)
			assert.LessOrEqual(t, result.ExpandedNodes, 2)
		})
	}
}

func TestStrategies_ResetAllowsReuse(t *testing.T) {
	for _, tc := range graphStrategies() {
		t.Run(tc.name, func(t *testing.T) {
			first, err := tc.strategy.Solve(context.Background(), chainProblem())
			require.NoError(t, err)

			tc.strategy.Reset()
			second, err := tc.strategy.Solve(context.Background(), chainProblem())
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

// blockingProblem parks InitialState until released.
type blockingProblem struct {
	*graphProblem
	entered chan struct{}
	release chan struct{}
}

func (problem *blockingProblem) InitialState() (string, error) {
	close(problem.entered)
	<-problem.release
	return problem.graphProblem.InitialState()
}

func TestStrategies_RejectConcurrentSolve(t *testing.T) {
	bfs := NewBFS[string, string](quiet)
	problem := &blockingProblem{
		graphProblem: chainProblem(),
		entered:      make(chan struct{}),
		release:      make(chan struct{}),
	}

	done := make(chan error, 1)
	go func() {
		_, err := bfs.Solve(context.Background(), problem)
		done <- err
	}()

	<-problem.entered
	_, err := bfs.Solve(context.Background(), chainProblem())
	assert.ErrorIs(t, err, ErrSolveInProgress)

	close(problem.release)
	require.NoError(t, <-done)
}
