package spans

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// WithAttribute adds an attribute to the span when it is created.
//
//	spans.StartErr(ctx, "bitonic.sort",
//	    spans.WithAttribute("bitonic.length", attribute.IntValue(len(x))),
//	)
func WithAttribute(key attribute.Key, value attribute.Value) Option {
	return func(r *runner) {
		r.sso = append(r.sso, trace.WithAttributes(attribute.KeyValue{
			Key:   key,
			Value: value,
		}))
	}
}

// WithSpanKind sets the span kind. The default is SpanKindInternal.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(r *runner) {
		r.spanKind = kind
	}
}

// WithSuccessMessage sets the status description used when the function
// succeeds. Defaults to "ok".
func WithSuccessMessage(description string) Option {
	return func(r *runner) {
		r.success = description
	}
}

// WithErrorMessage sets a prefix for the status description used when the
// function fails.
func WithErrorMessage(description string) Option {
	return func(r *runner) {
		r.failure = description
	}
}
