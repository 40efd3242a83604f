package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/amp-labs/bitonic/batch"
	"github.com/amp-labs/bitonic/bitonic"
	"github.com/amp-labs/bitonic/cli"
	"github.com/amp-labs/bitonic/envutil"
)

var (
	errConflictingModes = errors.New("-numeric, -natural and -collate are mutually exclusive")
	errInteractiveStdin = errors.New("-interactive needs the terminal for prompts and cannot read input from stdin")
)

// config is the resolved command line.
type config struct {
	order       bitonic.Order
	comparison  cli.Comparison
	language    string
	charset     string
	parallel    int
	workers     int
	configFile  string
	interactive bool
	verify      bool
	inputs      []string
}

// flags holds the raw flag values before the environment is consulted.
type flags struct {
	set *flag.FlagSet

	order       string
	numeric     bool
	natural     bool
	collate     string
	charset     string
	parallel    int
	workers     int
	configFile  string
	interactive bool
	verify      bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{set: flag.NewFlagSet("bitonic", flag.ContinueOnError)}
	f.set.SetOutput(stderr)

	f.set.StringVar(&f.order, "order", "asc", "Sort order: asc or desc")
	f.set.BoolVar(&f.numeric, "numeric", false, "Compare lines as numbers")
	f.set.BoolVar(&f.natural, "natural", false, "Compare runs of digits as numbers (file2 < file10)")
	f.set.StringVar(&f.collate, "collate", "", "Compare with the collation rules of this BCP 47 language")
	f.set.StringVar(&f.charset, "charset", "", "Charset of the inputs (default: detected)")
	f.set.IntVar(&f.parallel, "parallel", 0, "Goroutines per sort; 0 reads BITONIC_MAX_CONCURRENCY")
	f.set.IntVar(&f.workers, "workers", 0, "Inputs sorted at once; 0 reads BITONIC_WORKERS")
	f.set.StringVar(&f.configFile, "config", "", "YAML or JSON file with environment defaults")
	f.set.BoolVar(&f.interactive, "interactive", false, "Ask for the order and comparison")
	f.set.BoolVar(&f.verify, "verify", false, "Check every output is sorted and a permutation of its input")

	if err := f.set.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

// isSet reports whether name was given on the command line.
func (f *flags) isSet(name string) bool {
	found := false

	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})

	return found
}

// resolve merges the flags with the environment. Flags given explicitly win.
func (f *flags) resolve(ctx context.Context) (*config, error) {
	cfg := &config{
		charset:     f.charset,
		parallel:    f.parallel,
		workers:     f.workers,
		configFile:  f.configFile,
		interactive: f.interactive,
		verify:      f.verify,
		inputs:      f.set.Args(),
	}

	orderName := f.order
	if !f.isSet("order") {
		orderName = envutil.String(ctx, "BITONIC_ORDER", envutil.Default(f.order)).ValueOrElse(f.order)
	}

	order, err := bitonic.ParseOrder(orderName)
	if err != nil {
		return nil, err
	}

	cfg.order = order

	numeric := f.numeric
	if !f.isSet("numeric") {
		numeric = envutil.Bool(ctx, "BITONIC_NUMERIC", envutil.Default(false)).ValueOrElse(false)
	}

	natural := f.natural
	if !f.isSet("natural") {
		natural = envutil.Bool(ctx, "BITONIC_NATURAL", envutil.Default(false)).ValueOrElse(false)
	}

	language := f.collate
	if !f.isSet("collate") {
		language = envutil.String(ctx, "BITONIC_COLLATE", envutil.Default("")).ValueOrElse("")
	}

	cfg.comparison, cfg.language, err = pickComparison(numeric, natural, language)
	if err != nil {
		return nil, err
	}

	if len(cfg.inputs) == 0 {
		cfg.inputs = []string{batch.Stdin}
	}

	if cfg.interactive && slices.Contains(cfg.inputs, batch.Stdin) {
		return nil, errInteractiveStdin
	}

	return cfg, nil
}

func pickComparison(numeric, natural bool, language string) (cli.Comparison, string, error) {
	picked := 0

	comparison := cli.Lexical

	if numeric {
		picked++

		comparison = cli.Numeric
	}

	if natural {
		picked++

		comparison = cli.Natural
	}

	if language != "" {
		if err := cli.ValidateLanguage(language); err != nil {
			return "", "", fmt.Errorf("-collate %q: %w", language, err)
		}

		picked++

		comparison = cli.Collate
	}

	if picked > 1 {
		return "", "", errConflictingModes
	}

	return comparison, language, nil
}
