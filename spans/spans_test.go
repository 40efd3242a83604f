package spans_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amp-labs/bitonic/spans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	otelTrace "go.opentelemetry.io/otel/trace"
)

var errSortFailed = errors.New("sort failed")

// setupTestTracer creates a test tracer and exporter for testing spans.
func setupTestTracer() (*trace.TracerProvider, *tracetest.InMemoryExporter) {
	exporter := tracetest.NewInMemoryExporter()
	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
	)

	return tp, exporter
}

func TestTracerFromContext(t *testing.T) {
	t.Parallel()

	t.Run("tracer exists", func(t *testing.T) {
		t.Parallel()

		tp, _ := setupTestTracer()
		tracer := tp.Tracer("test-tracer")

		ctx := spans.WithTracer(context.Background(), tracer)

		retrieved, found := spans.TracerFromContext(ctx)
		require.True(t, found)
		assert.Equal(t, tracer, retrieved)
	})

	t.Run("tracer missing", func(t *testing.T) {
		t.Parallel()

		_, found := spans.TracerFromContext(context.Background())
		assert.False(t, found)
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()

		_, found := spans.TracerFromContext(nil) //nolint:staticcheck
		assert.False(t, found)
	})
}

func TestStart(t *testing.T) {
	t.Parallel()

	tp, exporter := setupTestTracer()
	ctx := spans.WithTracer(context.Background(), tp.Tracer("test-tracer"))

	called := false

	spans.Start(ctx, "bitonic.job",
		spans.WithAttribute("bitonic.length", attribute.IntValue(8)),
	).Enter(func(ctx context.Context, span otelTrace.Span) {
		called = true

		assert.True(t, span.SpanContext().IsValid())
		assert.Equal(t, span, otelTrace.SpanFromContext(ctx))
	})

	require.True(t, called)

	recorded := exporter.GetSpans()
	require.Len(t, recorded, 1)
	assert.Equal(t, "bitonic.job", recorded[0].Name)
	assert.Equal(t, otelTrace.SpanKindInternal, recorded[0].SpanKind)
	assert.Equal(t, codes.Ok, recorded[0].Status.Code)
	assert.Contains(t, recorded[0].Attributes, attribute.Int("bitonic.length", 8))
}

func TestStartErr(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		tp, exporter := setupTestTracer()
		ctx := spans.WithTracer(context.Background(), tp.Tracer("test-tracer"))

		err := spans.StartErr(ctx, "bitonic.sort",
			spans.WithSpanKind(otelTrace.SpanKindClient),
			spans.WithSuccessMessage("sorted"),
		).Enter(func(context.Context, otelTrace.Span) error {
			return nil
		})
		require.NoError(t, err)

		recorded := exporter.GetSpans()
		require.Len(t, recorded, 1)
		assert.Equal(t, otelTrace.SpanKindClient, recorded[0].SpanKind)
		assert.Equal(t, codes.Ok, recorded[0].Status.Code)
	})

	t.Run("error is recorded and returned", func(t *testing.T) {
		t.Parallel()

		tp, exporter := setupTestTracer()
		ctx := spans.WithTracer(context.Background(), tp.Tracer("test-tracer"))

		err := spans.StartErr(ctx, "bitonic.sort",
			spans.WithErrorMessage("bitonic sort"),
		).Enter(func(context.Context, otelTrace.Span) error {
			return errSortFailed
		})
		require.ErrorIs(t, err, errSortFailed)

		recorded := exporter.GetSpans()
		require.Len(t, recorded, 1)
		assert.Equal(t, codes.Error, recorded[0].Status.Code)
		assert.Equal(t, "bitonic sort: sort failed", recorded[0].Status.Description)
		require.NotEmpty(t, recorded[0].Events)
		assert.Equal(t, "exception", recorded[0].Events[0].Name)
	})

	t.Run("panic is recorded and re-raised", func(t *testing.T) {
		t.Parallel()

		tp, exporter := setupTestTracer()
		ctx := spans.WithTracer(context.Background(), tp.Tracer("test-tracer"))

		assert.PanicsWithValue(t, "comparator exploded", func() {
			_ = spans.StartErr(ctx, "bitonic.sort").Enter(func(context.Context, otelTrace.Span) error {
				panic("comparator exploded")
			})
		})

		recorded := exporter.GetSpans()
		require.Len(t, recorded, 1)
		assert.Equal(t, codes.Error, recorded[0].Status.Code)
		assert.Contains(t, recorded[0].Attributes, attribute.Bool("panic", true))
	})

	t.Run("without tracer", func(t *testing.T) {
		t.Parallel()

		called := false

		err := spans.StartErr(context.Background(), "bitonic.sort").Enter(
			func(_ context.Context, span otelTrace.Span) error {
				called = true

				assert.False(t, span.SpanContext().IsValid())

				return errSortFailed
			})

		assert.True(t, called)
		assert.ErrorIs(t, err, errSortFailed)
	})

	t.Run("nil function", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, spans.StartErr(context.Background(), "noop").Enter(nil))
	})
}

func TestNestedSpans(t *testing.T) {
	t.Parallel()

	tp, exporter := setupTestTracer()
	ctx := spans.WithTracer(context.Background(), tp.Tracer("test-tracer"))

	spans.Start(ctx, "bitonic.batch").Enter(func(ctx context.Context, _ otelTrace.Span) {
		_ = spans.StartErr(ctx, "bitonic.sort").Enter(func(context.Context, otelTrace.Span) error {
			return nil
		})
	})

	recorded := exporter.GetSpans()
	require.Len(t, recorded, 2)

	child, parent := recorded[0], recorded[1]
	assert.Equal(t, "bitonic.sort", child.Name)
	assert.Equal(t, "bitonic.batch", parent.Name)
	assert.Equal(t, parent.SpanContext.SpanID(), child.Parent.SpanID())
}
