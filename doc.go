// Package search provides a generic state-space search engine.
//
// A caller describes a problem through the Problem interface (initial state,
// legal actions, transition, goal test and action cost) and hands it to one
// of the strategies:
//
//   - BFS: breadth-first graph search, shortest in number of actions.
//   - DFS: depth-first graph search.
//   - DepthLimited: depth-limited search reporting cutoff vs failure.
//   - IterativeDeepening: depth-limited search with a growing limit.
//   - UniformCost: cheapest-first search (A* with a zero heuristic).
//   - AStar: best-first search ordered by path cost plus a heuristic.
//
// Every strategy owns one frontier and one explored set. Solve is synchronous
// and must not be called concurrently on the same instance; call Reset (or
// build a new strategy) before reusing an instance for another problem. The
// Agent type wraps a strategy, resets it before every run and reports status
// transitions to an optional observer.
package search
