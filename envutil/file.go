package envutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// ErrNonScalarValue is returned when an env file value is an object or array.
var ErrNonScalarValue = errors.New("env file value must be a string, number or boolean")

// envFile is the layout shared by JSON and YAML config files: a top-level
// "env" object of scalar values. Numbers and booleans keep their literal text.
//
//	env:
//	  BITONIC_ORDER: desc
//	  BITONIC_WORKERS: 8
type envFile struct {
	Env map[string]scalar `json:"env" yaml:"env"`
}

type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = scalar(str)

		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.(type) {
	case float64, bool:
		*s = scalar(strings.TrimSpace(string(data)))
	case nil:
		*s = ""
	default:
		return fmt.Errorf("%w: %s", ErrNonScalarValue, data)
	}

	return nil
}

// LoadEnvFile reads variables from a .json, .yml or .yaml file.
func LoadEnvFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	out := &envFile{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(bts, out)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(bts, out)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}

	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	env := make(map[string]string, len(out.Env))
	for k, v := range out.Env {
		env[k] = string(v)
	}

	return env, nil
}

// WithEnvFile loads path with LoadEnvFile and installs every variable as a
// context override.
func WithEnvFile(ctx context.Context, path string) (context.Context, error) {
	env, err := LoadEnvFile(path)
	if err != nil {
		return ctx, err
	}

	return WithEnvOverrides(ctx, env), nil
}
