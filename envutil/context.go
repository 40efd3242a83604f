package envutil

import (
	"context"
)

type envContextKey string

// WithEnvOverride makes every reader using the returned context see value for
// key, regardless of the process environment.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, envContextKey(key), value)
}

// WithEnvOverrides is WithEnvOverride for every entry of env.
func WithEnvOverrides(ctx context.Context, env map[string]string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	for key, value := range env {
		ctx = WithEnvOverride(ctx, key, value)
	}

	return ctx
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		return "", false
	}

	val, ok := ctx.Value(envContextKey(key)).(string)

	return val, ok
}
