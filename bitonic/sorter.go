package bitonic

import (
	"cmp"
	"context"
	"log/slog"
	"time"

	"github.com/amp-labs/bitonic/compare"
	"github.com/amp-labs/bitonic/logger"
	"github.com/amp-labs/bitonic/spans"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Sorter is a reusable, instrumented bitonic sorter for one comparator.
//
// It behaves exactly like SortBy and adds logging, Prometheus metrics, an
// OpenTelemetry span per call (when a tracer is in the context, see
// spans.WithTracer), running counters and optional parallelism. A Sorter is
// safe for concurrent use on distinct slices.
type Sorter[T any] struct {
	cmp           compare.Comparator[T]
	name          string
	logger        *slog.Logger
	threshold     int
	maxConcurrent int
	stats         *Stats
}

// NewSorter creates a Sorter ordering elements by c. It panics if c is nil.
func NewSorter[T any](c compare.Comparator[T], opts ...Option) *Sorter[T] {
	if c == nil {
		panic("bitonic: nil comparator")
	}

	options := &sorterOptions{
		name: defaultSorterName,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	return &Sorter[T]{
		cmp:           c,
		name:          options.name,
		logger:        options.logger,
		threshold:     options.threshold,
		maxConcurrent: options.maxConcurrent,
		stats:         newStats(),
	}
}

// NewOrderedSorter creates a Sorter for the natural order of T in the given
// direction. It panics if order is neither Ascending nor Descending.
func NewOrderedSorter[T cmp.Ordered](order Order, opts ...Option) *Sorter[T] {
	if err := order.validate(); err != nil {
		panic("bitonic: " + err.Error())
	}

	return NewSorter(comparatorFor(compare.Natural[T](), order), opts...)
}

// Name returns the label given with WithName.
func (s *Sorter[T]) Name() string {
	return s.name
}

// Stats returns a snapshot of the sorter's running counters.
func (s *Sorter[T]) Stats() Snapshot {
	return s.stats.Snapshot()
}

// Sort reorders x in place. It has the same contract as SortBy: a
// non power-of-two length returns a *LengthError and leaves x untouched.
// The context carries the tracer and logging values; it does not cancel a
// sort that has started.
func (s *Sorter[T]) Sort(ctx context.Context, x []T) error {
	return spans.StartErr(ctx, "bitonic.sort",
		spans.WithSpanKind(trace.SpanKindInternal),
		spans.WithAttribute("bitonic.sorter", attribute.StringValue(s.name)),
		spans.WithAttribute("bitonic.length", attribute.IntValue(len(x))),
	).Enter(func(ctx context.Context, span trace.Span) error {
		return s.sort(ctx, span, x)
	})
}

func (s *Sorter[T]) sort(ctx context.Context, span trace.Span, x []T) error {
	log := s.getLogger(ctx)

	if !IsPowerOfTwo(len(x)) {
		s.stats.failures.Inc()
		sortsTotal.WithLabelValues(s.name, outcomeBadLength).Inc()

		log.Warn("refusing to sort sequence", "sorter", s.name, "length", len(x))

		return &LengthError{Length: len(x)}
	}

	call := newStats()
	e := engine[T]{
		cmp:   s.cmp,
		fork:  newForker(s.threshold, s.maxConcurrent),
		stats: call,
	}

	start := time.Now()

	e.sort(x, true)

	elapsed := time.Since(start)
	done := call.Snapshot()

	s.stats.sorts.Inc()
	s.stats.elements.Add(int64(len(x)))
	s.stats.comparisons.Add(done.Comparisons)
	s.stats.swaps.Add(done.Swaps)

	sortsTotal.WithLabelValues(s.name, outcomeSorted).Inc()
	comparisonsTotal.WithLabelValues(s.name).Add(float64(done.Comparisons))
	swapsTotal.WithLabelValues(s.name).Add(float64(done.Swaps))
	sortLength.WithLabelValues(s.name).Observe(float64(len(x)))
	sortDuration.WithLabelValues(s.name).Observe(elapsed.Seconds())

	span.SetAttributes(
		attribute.Int64("bitonic.comparisons", done.Comparisons),
		attribute.Int64("bitonic.swaps", done.Swaps),
	)

	log.Debug("sorted sequence",
		"sorter", s.name,
		"length", len(x),
		"comparisons", done.Comparisons,
		"swaps", done.Swaps,
		"duration", elapsed)

	return nil
}

func (s *Sorter[T]) getLogger(ctx context.Context) *slog.Logger {
	if s.logger != nil {
		return s.logger
	}

	return logger.Get(ctx)
}
