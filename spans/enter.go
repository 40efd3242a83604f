package spans

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Enter executes f within the span. Panics are recorded on the span and re-raised.
func (o *StartOrchestrator) Enter(f func(ctx context.Context, span trace.Span)) {
	if f == nil {
		return
	}

	_ = invoke(o.ctx, o.name, func(ctx context.Context, span trace.Span) error {
		f(ctx, span)

		return nil
	}, o.opts...)
}

// Enter executes f within the span and returns its error.
func (o *StartErrorOrchestrator) Enter(f func(ctx context.Context, span trace.Span) error) error {
	if f == nil {
		return nil
	}

	return invoke(o.ctx, o.name, f, o.opts...)
}
