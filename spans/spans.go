// Package spans wraps functions in OpenTelemetry spans when, and only when,
// a tracer has been placed in the context with WithTracer. Code can therefore
// be instrumented unconditionally and stays span-free in tests and tools
// that never configure tracing.
package spans

import "context"

// StartOrchestrator runs a function that returns nothing. Create via Start.
type StartOrchestrator struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// StartErrorOrchestrator runs a function that returns an error. Create via StartErr.
type StartErrorOrchestrator struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// Start prepares a span named name for a function that cannot fail.
//
//	spans.Start(ctx, "bitonic.batch.job").Enter(func(ctx context.Context, span trace.Span) {
//	    ...
//	})
func Start(ctx context.Context, name string, opts ...Option) *StartOrchestrator {
	return &StartOrchestrator{ctx: ctx, name: name, opts: opts}
}

// StartErr prepares a span named name for a function that returns an error.
// The error is recorded on the span and returned unchanged.
func StartErr(ctx context.Context, name string, opts ...Option) *StartErrorOrchestrator {
	return &StartErrorOrchestrator{ctx: ctx, name: name, opts: opts}
}
