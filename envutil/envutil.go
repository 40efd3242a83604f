// Package envutil reads typed configuration from environment variables.
//
// Every reader takes a context: a value stored with WithEnvOverride (or
// loaded from a file with WithEnvFile) wins over the process environment,
// which lets tests and config files drive configuration without os.Setenv.
//
//	workers := envutil.Int[int](ctx, "BITONIC_WORKERS",
//	    envutil.Default(4),
//	    envutil.Validate(envutil.NonNegative[int]),
//	).ValueOrElse(4)
package envutil

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// get returns a Reader for the given key, preferring a context override.
// A variable set to the empty string counts as missing.
func get(ctx context.Context, key string) Reader[string] {
	val, ok := getEnvOverride(ctx, key)
	if !ok {
		val, ok = os.LookupEnv(key)
	}

	return Reader[string]{
		key:     key,
		present: ok && val != "",
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		if opt != nil {
			rdr = opt(rdr)
		}
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool parses the variable with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}), opts)
}

// Int parses the variable as a base-10 integer that fits in I.
func Int[I ~int | ~int32 | ~int64](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	return apply(Map(get(ctx, key), func(s string) (I, error) {
		var zero I

		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return zero, err
		}

		if int64(I(n)) != n {
			return zero, strconv.ErrRange
		}

		return I(n), nil
	}), opts)
}

// Duration parses the variable with time.ParseDuration.
func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(ctx, key), func(s string) (time.Duration, error) {
		return time.ParseDuration(strings.TrimSpace(s))
	}), opts)
}

// SlogLevel parses the variable as a slog level name ("debug", "INFO", "warn+2", ...).
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), func(s string) (slog.Level, error) {
		var level slog.Level

		err := level.UnmarshalText([]byte(strings.TrimSpace(s)))

		return level, err
	}), opts)
}
