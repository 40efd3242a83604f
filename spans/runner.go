package spans

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/amp-labs/bitonic/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Option is a function that configures a runner.
type Option func(*runner)

// runner executes one function inside one span.
type runner struct {
	spanName string
	success  string
	failure  string
	spanKind trace.SpanKind
	tracer   trace.Tracer
	sso      []trace.SpanStartOption
}

func newRunner(tracer trace.Tracer, spanName string, opts ...Option) *runner {
	r := &runner{
		spanName: spanName,
		spanKind: trace.SpanKindInternal,
		tracer:   tracer,
	}

	for _, option := range opts {
		if option != nil {
			option(r)
		}
	}

	return r
}

// run executes operation inside a new span. Errors are recorded and set as
// the span status. A panic is recorded on the span, which is then ended,
// and the panic is re-raised unchanged.
func (r *runner) run(ctx context.Context, operation func(ctx context.Context, span trace.Span) error) error {
	opts := make([]trace.SpanStartOption, 0, len(r.sso)+1)
	opts = append(opts, r.sso...)
	opts = append(opts, trace.WithSpanKind(r.spanKind))

	ctx, span := r.tracer.Start(ctx, r.spanName, opts...) //nolint:spancheck
	defer span.End()

	defer func() {
		if recovered := recover(); recovered != nil {
			span.SetAttributes(attribute.Bool("panic", true))

			err := errors.PanicError(recovered, debug.Stack())
			span.RecordError(err)
			r.setErrorStatus(span, err)

			panic(recovered)
		}
	}()

	err := operation(ctx, span)
	if err != nil {
		span.RecordError(err)
		r.setErrorStatus(span, err)
	} else {
		r.setSuccessStatus(span)
	}

	return err
}

func (r *runner) setErrorStatus(span trace.Span, err error) {
	if len(r.failure) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%s: %s", r.failure, err.Error()))
	} else {
		span.SetStatus(codes.Error, err.Error())
	}
}

func (r *runner) setSuccessStatus(span trace.Span) {
	if len(r.success) > 0 {
		span.SetStatus(codes.Ok, r.success)
	} else {
		span.SetStatus(codes.Ok, "ok")
	}
}

// invoke runs call inside a span when the context holds a tracer. Without
// one, call runs as-is with the context's current span and the miss is
// counted.
func invoke(
	ctx context.Context, name string,
	call func(ctx context.Context, span trace.Span) error, opts ...Option,
) error {
	tracer, found := TracerFromContext(ctx)
	if !found {
		spanWithoutTracerCounter.WithLabelValues(name).Inc()

		return call(ctx, trace.SpanFromContext(ctx))
	}

	return newRunner(tracer, name, opts...).run(ctx, call)
}
