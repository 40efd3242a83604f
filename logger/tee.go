package logger

import (
	"context"
	"errors"
	"log/slog"
)

// Tee makes the default logger also send every record to h, in addition to
// the handler installed by ConfigureLogging. It is used to forward logs to
// an OpenTelemetry collector.
func Tee(h slog.Handler) {
	if h == nil {
		return
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	slog.SetDefault(slog.New(&teeHandler{
		handlers: []slog.Handler{slog.Default().Handler(), h},
	}))
}

// teeHandler dispatches each record to every handler that accepts its level.
type teeHandler struct {
	handlers []slog.Handler
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (t *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, h := range t.handlers {
		if h.Enabled(ctx, record.Level) {
			errs = append(errs, h.Handle(ctx, record.Clone()))
		}
	}

	return errors.Join(errs...)
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		out[i] = h.WithAttrs(attrs)
	}

	return &teeHandler{handlers: out}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		out[i] = h.WithGroup(name)
	}

	return &teeHandler{handlers: out}
}
