package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTee(t *testing.T) { //nolint:paralleltest
	var primary, secondary bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "tee",
		JSON:      true,
		MinLevel:  slog.LevelInfo,
		Output:    &primary,
	})

	Tee(slog.NewJSONHandler(&secondary, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Tee(nil)

	Get().Debug("only secondary")
	Get(With(t.Context(), "sorter", "cli")).Info("both")

	first := decodeLines(t, &primary)
	second := decodeLines(t, &secondary)

	require.Len(t, first, 1)
	require.Len(t, second, 2)

	assert.Equal(t, "both", first[0]["msg"])
	assert.Equal(t, "cli", first[0]["sorter"])
	assert.Equal(t, "tee", second[1]["subsystem"])
	assert.Equal(t, "cli", second[1]["sorter"])
	assert.Equal(t, "only secondary", second[0]["msg"])
}

func TestTee_ReachesLoggersFetchedAfterwards(t *testing.T) { //nolint:paralleltest
	var primary, secondary bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "tee",
		JSON:      true,
		MinLevel:  slog.LevelInfo,
		Output:    &primary,
	})

	ctx := With(t.Context(), "run_id", "r1")
	early := Get(ctx)

	Tee(slog.NewJSONHandler(&secondary, nil))

	early.Warn("before tee")
	Get(ctx).Warn("after tee")

	first := decodeLines(t, &primary)
	second := decodeLines(t, &secondary)

	require.Len(t, first, 2)
	require.Len(t, second, 1)

	assert.Equal(t, "after tee", second[0]["msg"])
	assert.Equal(t, "r1", second[0]["run_id"])
}
