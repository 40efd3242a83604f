package bitonic

import (
	"context"
	"log/slog"

	"github.com/amp-labs/bitonic/envutil"
)

const (
	defaultSorterName = "default"

	// DefaultParallelThreshold is the smallest region worth forking when
	// parallelism is requested from the environment without a threshold.
	DefaultParallelThreshold = 1 << 14
)

type sorterOptions struct {
	name          string
	logger        *slog.Logger
	threshold     int
	maxConcurrent int
}

// Option configures a Sorter.
type Option func(*sorterOptions)

// WithName labels the sorter in logs, metrics and spans.
func WithName(name string) Option {
	return func(o *sorterOptions) {
		o.name = name
	}
}

// WithLogger sets the logger used by the sorter. When unset, the sorter
// uses logger.Get with the context passed to Sort.
func WithLogger(l *slog.Logger) Option {
	return func(o *sorterOptions) {
		o.logger = l
	}
}

// WithParallelism lets the sorter run the two halves of any region of at
// least threshold elements on separate goroutines, using at most
// maxConcurrent goroutines per sort (the caller's included). A threshold
// below 2 or maxConcurrent below 2 keeps the sorter sequential.
func WithParallelism(threshold, maxConcurrent int) Option {
	return func(o *sorterOptions) {
		o.threshold = threshold
		o.maxConcurrent = maxConcurrent
	}
}

// OptionsFromEnv reads sorter settings from the environment:
//
//	BITONIC_MAX_CONCURRENCY     goroutines per sort; 0 or 1 keeps sorts sequential (default 0)
//	BITONIC_PARALLEL_THRESHOLD  smallest region that is forked (default DefaultParallelThreshold)
//
// Invalid values are logged and replaced by their defaults.
func OptionsFromEnv(ctx context.Context) []Option {
	maxConcurrent := envutil.Int[int](ctx, "BITONIC_MAX_CONCURRENCY",
		envutil.Default(0),
		envutil.Validate(envutil.NonNegative[int]),
	).ValueOrElse(0)

	if maxConcurrent < 2 { //nolint:mnd
		return nil
	}

	threshold := envutil.Int[int](ctx, "BITONIC_PARALLEL_THRESHOLD",
		envutil.Default(DefaultParallelThreshold),
		envutil.Validate(envutil.NonNegative[int]),
	).ValueOrElse(DefaultParallelThreshold)

	return []Option{WithParallelism(threshold, maxConcurrent)}
}
