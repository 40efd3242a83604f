package spans

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type contextKey string

// TracerKey is the context key used to store the OpenTelemetry tracer.
const TracerKey contextKey = "tracer"

// WithTracer stores an OpenTelemetry tracer in the context. Start and
// StartErr create spans only when a tracer is present.
//
//	ctx = spans.WithTracer(ctx, otel.Tracer("bitonic"))
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, TracerKey, tracer)
}

// TracerFromContext retrieves the OpenTelemetry tracer from the context.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) {
	if ctx == nil {
		return nil, false
	}

	tracer, ok := ctx.Value(TracerKey).(trace.Tracer)

	return tracer, ok && tracer != nil
}
