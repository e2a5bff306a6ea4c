package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for search runs.
var (
	tracer = otel.Tracer("github.com/pdrpinto/search")
	meter  = otel.Meter("github.com/pdrpinto/search")
)

var (
	solveLatency  metric.Float64Histogram
	solveTotal    metric.Int64Counter
	nodesExpanded metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		solveLatency, err = meter.Float64Histogram(
			"search_solve_duration_seconds",
			metric.WithDescription("Duration of Solve calls"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		solveTotal, err = meter.Int64Counter(
			"search_solve_total",
			metric.WithDescription("Total number of Solve calls"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		nodesExpanded, err = meter.Int64Counter(
			"search_nodes_expanded_total",
			metric.WithDescription("Total number of nodes expanded"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordSolveMetrics(ctx context.Context, strategy string, duration time.Duration, expanded int, outcome string) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy),
		attribute.String("outcome", outcome),
	)
	solveLatency.Record(ctx, duration.Seconds(), attrs)
	solveTotal.Add(ctx, 1, attrs)
	nodesExpanded.Add(ctx, int64(expanded), metric.WithAttributes(attribute.String("strategy", strategy)))
}

func startSolveSpan(ctx context.Context, strategy string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "search.Solve",
		trace.WithAttributes(attribute.String("search.strategy", strategy)),
	)
}

// observeSolve wraps one run with a span, metrics and log lines. It never
// alters the result or the error returned by run.
func observeSolve[ActionType any](
	ctx context.Context,
	strategy string,
	logger *slog.Logger,
	run func(context.Context) (Result[ActionType], error),
) (Result[ActionType], error) {
	ctx, span := startSolveSpan(ctx, strategy)
	defer span.End()

	logger.Debug("search started", slog.String("strategy", strategy))
	start := time.Now()
	result, err := run(ctx)
	duration := time.Since(start)

	outcome := result.Outcome.String()
	if err != nil {
		outcome = "error"
	}
	span.SetAttributes(
		attribute.String("search.outcome", outcome),
		attribute.Int("search.expanded", result.ExpandedNodes),
		attribute.Int("search.solution_length", len(result.Actions)),
		attribute.Float64("search.cost", result.TotalCost),
	)
	recordSolveMetrics(ctx, strategy, duration, result.ExpandedNodes, outcome)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("search aborted",
			slog.String("strategy", strategy),
			slog.Int("expanded", result.ExpandedNodes),
			slog.String("error", err.Error()))
		return result, err
	}

	logger.Info("search finished",
		slog.String("strategy", strategy),
		slog.String("outcome", outcome),
		slog.Int("expanded", result.ExpandedNodes),
		slog.Int("length", len(result.Actions)),
		slog.Float64("cost", result.TotalCost),
		slog.Duration("duration", duration))
	return result, nil
}
