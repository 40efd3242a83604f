package envutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_OverrideWinsOverEnvironment(t *testing.T) { //nolint:paralleltest
	t.Setenv("BITONIC_TEST_ORDER", "asc")

	ctx := WithEnvOverride(t.Context(), "BITONIC_TEST_ORDER", "desc")

	assert.Equal(t, "desc", String(ctx, "BITONIC_TEST_ORDER").ValueOrElse(""))
	assert.Equal(t, "asc", String(t.Context(), "BITONIC_TEST_ORDER").ValueOrElse(""))
}

func TestReader_Missing(t *testing.T) {
	t.Parallel()

	rdr := String(t.Context(), "BITONIC_TEST_SURELY_NOT_SET")

	assert.False(t, rdr.HasValue())
	assert.Equal(t, "fallback", rdr.ValueOrElse("fallback"))
	assert.Equal(t, "BITONIC_TEST_SURELY_NOT_SET=<not set>", rdr.String())

	_, err := rdr.Value()
	require.ErrorIs(t, err, ErrEnvVarMissing)

	val, err := String(t.Context(), "BITONIC_TEST_SURELY_NOT_SET", Default("x")).Value()
	require.NoError(t, err)
	assert.Equal(t, "x", val)
}

func TestReader_IfMissing(t *testing.T) {
	t.Parallel()

	_, err := Bool(t.Context(), "BITONIC_TEST_SURELY_NOT_SET", IfMissing[bool](ErrInvalidValue)).Value()
	require.ErrorIs(t, err, ErrBadEnvVar)
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestTypedReaders(t *testing.T) {
	t.Parallel()

	ctx := WithEnvOverrides(t.Context(), map[string]string{
		"B":     " true ",
		"I":     "42",
		"NEG":   "-3",
		"BIG":   "99999999999",
		"BAD":   "forty-two",
		"D":     "150ms",
		"LEVEL": "debug",
	})

	assert.True(t, Bool(ctx, "B").ValueOrElse(false))
	assert.Equal(t, 42, Int[int](ctx, "I").ValueOrElse(0))
	assert.Equal(t, 150*time.Millisecond, Duration(ctx, "D").ValueOrElse(0))
	assert.Equal(t, slog.LevelDebug, SlogLevel(ctx, "LEVEL").ValueOrElse(slog.LevelInfo))

	_, err := Int[int32](ctx, "BIG").Value()
	require.ErrorIs(t, err, ErrBadEnvVar)

	bad := Int[int](ctx, "BAD")
	assert.Error(t, bad.Error())
	assert.Equal(t, 7, bad.ValueOrElse(7))

	_, err = Int[int](ctx, "NEG", Validate(NonNegative[int])).Value()
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	ctx := WithEnvOverride(t.Context(), "ORDER", "sideways")

	_, err := String(ctx, "ORDER", Validate(OneOf("asc", "desc"))).Value()
	require.ErrorIs(t, err, ErrInvalidValue)

	ctx = WithEnvOverride(t.Context(), "ORDER", "desc")
	assert.Equal(t, "desc", String(ctx, "ORDER", Validate(OneOf("asc", "desc"))).ValueOrElse(""))
}

func TestLoadEnvFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "bitonic.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("env:\n  BITONIC_ORDER: desc\n  BITONIC_WORKERS: \"8\"\n"), 0o600))

	jsonPath := filepath.Join(dir, "bitonic.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"env":{"BITONIC_ORDER":"asc"}}`), 0o600))

	txtPath := filepath.Join(dir, "bitonic.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("BITONIC_ORDER=asc"), 0o600))

	env, err := LoadEnvFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"BITONIC_ORDER": "desc", "BITONIC_WORKERS": "8"}, env)

	env, err = LoadEnvFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"BITONIC_ORDER": "asc"}, env)

	_, err = LoadEnvFile(txtPath)
	require.ErrorIs(t, err, ErrUnknownFileType)

	_, err = LoadEnvFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	ctx, err := WithEnvFile(t.Context(), yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 8, Int[int](ctx, "BITONIC_WORKERS").ValueOrElse(0))
}

func TestLoadEnvFile_UnquotedScalars(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "bitonic.json")
	require.NoError(t, os.WriteFile(jsonPath,
		[]byte(`{"env":{"BITONIC_WORKERS": 8, "BITONIC_VERIFY": true, "OTEL_SERVICE_NAME": null}}`), 0o600))

	yamlPath := filepath.Join(dir, "bitonic.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("env:\n  BITONIC_WORKERS: 8\n  BITONIC_VERIFY: true\n"), 0o600))

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"env":{"BITONIC_WORKERS": [8]}}`), 0o600))

	env, err := LoadEnvFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"BITONIC_WORKERS":   "8",
		"BITONIC_VERIFY":    "true",
		"OTEL_SERVICE_NAME": "",
	}, env)

	env, err = LoadEnvFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"BITONIC_WORKERS": "8", "BITONIC_VERIFY": "true"}, env)

	_, err = LoadEnvFile(badPath)
	require.ErrorIs(t, err, ErrNonScalarValue)
}
