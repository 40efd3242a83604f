package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amp-labs/bitonic/batch"
	"github.com/amp-labs/bitonic/bitonic"
	"github.com/amp-labs/bitonic/cli"
	"github.com/amp-labs/bitonic/compare"
	"github.com/amp-labs/bitonic/envutil"
	"github.com/amp-labs/bitonic/hashing"
	"github.com/amp-labs/bitonic/logger"
	"github.com/amp-labs/bitonic/sequence"
	"github.com/amp-labs/bitonic/telemetry"
	"github.com/google/uuid"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitBadArgs = 2
)

var (
	errNotSorted      = errors.New("output is not sorted")
	errNotPermutation = errors.New("output is not a permutation of the input")
)

// job is one input on its way through the command.
type job struct {
	name   string
	data   []line
	before hashing.Fingerprint
	err    error
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return exitBadArgs
	}

	if f.configFile != "" {
		ctx, err = envutil.WithEnvFile(ctx, f.configFile)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "bitonic: %v\n", err)

			return exitBadArgs
		}
	}

	_, err = logger.ConfigureLogging(ctx, "bitonic", logger.WithOutput(stderr))
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "bitonic: %v\n", err)

		return exitBadArgs
	}

	ctx = logger.With(ctx, "run_id", uuid.NewString())

	cfg, err := f.resolve(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "bitonic: %v\n", err)

		return exitBadArgs
	}

	otelConfig, err := telemetry.LoadConfigFromEnv(ctx, "cli")
	if err != nil {
		logger.Get(ctx).Warn("Ignoring OpenTelemetry configuration", "error", err)
	} else {
		ctx, err = telemetry.Initialize(ctx, otelConfig)
		if err != nil {
			logger.Get(ctx).Warn("OpenTelemetry setup failed", "error", err)
		}
	}

	defer func() {
		if err := telemetry.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Get(ctx).Warn("OpenTelemetry shutdown failed", "error", err)
		}
	}()

	prompter := newPrompter(stderr)

	if cfg.interactive {
		if err := ask(prompter, cfg); err != nil {
			_, _ = fmt.Fprintf(stderr, "bitonic: %v\n", err)

			return exitBadArgs
		}
	}

	logger.Get(ctx).Debug("Resolved configuration",
		slog.String("order", cfg.order.String()),
		slog.String("comparison", string(cfg.comparison)),
		slog.String("config", cfg.configFile),
		slog.Int("inputs", len(cfg.inputs)))

	cmp, err := comparatorFor(cfg.comparison, cfg.language)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "bitonic: %v\n", err)

		return exitBadArgs
	}

	if cfg.order == bitonic.Descending {
		cmp = cmp.Reverse()
	}

	jobs := load(ctx, cfg, stdin)

	if cfg.interactive {
		jobs = skipUnsortable(prompter, jobs)
	}

	if err := sortJobs(ctx, cfg, cmp, jobs); err != nil {
		logger.Get(ctx).Debug("Some inputs failed", "error", err)
	}

	if cfg.verify {
		verify(cmp, jobs)
	}

	return report(jobs, stdout, stderr)
}

// newPrompter draws prompts on w so they never mix with the sorted output.
func newPrompter(w io.Writer) *cli.Prompter {
	return &cli.Prompter{Stdout: nopWriteCloser{w}}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// ask lets the user override the order and comparison.
func ask(p *cli.Prompter, cfg *config) error {
	order, err := p.SelectOrder(cfg.order)
	if err != nil {
		return err
	}

	comparison, err := p.SelectComparison(cfg.comparison)
	if err != nil {
		return err
	}

	cfg.order = order
	cfg.comparison = comparison

	if comparison == cli.Collate {
		lang := cfg.language
		if lang == "" {
			lang = "en"
		}

		cfg.language, err = p.PromptLanguage(lang)
		if err != nil {
			return err
		}
	}

	return nil
}

func load(ctx context.Context, cfg *config, stdin io.Reader) []*job {
	jobs := make([]*job, len(cfg.inputs))

	for i, name := range cfg.inputs {
		jobs[i] = &job{name: name}

		input, err := loadInput(name, cfg.charset, stdin)
		if err != nil {
			jobs[i].err = err

			continue
		}

		logger.Get(ctx).Debug("Loaded input",
			"input", name, "charset", input.Charset, "lines", len(input.Lines))

		jobs[i].data, jobs[i].err = toLines(input.Lines, cfg.comparison)
		jobs[i].before = fingerprint(jobs[i].data)
	}

	return jobs
}

func loadInput(name, charset string, stdin io.Reader) (*batch.Input, error) {
	if name != batch.Stdin {
		return batch.Load(name, charset)
	}

	decoded, applied := batch.Decode(stdin, charset)

	lines, err := batch.ReadLines(decoded)
	if err != nil {
		return nil, err
	}

	return &batch.Input{Name: name, Charset: applied, Lines: lines}, nil
}

// skipUnsortable asks whether each input with a bad length should be
// dropped rather than reported as a failure.
func skipUnsortable(p *cli.Prompter, jobs []*job) []*job {
	kept := jobs[:0]

	for _, j := range jobs {
		if j.err == nil && !bitonic.IsPowerOfTwo(len(j.data)) {
			skip, err := p.PromptPadding(j.name, &bitonic.LengthError{Length: len(j.data)})
			if err == nil && skip {
				continue
			}
		}

		kept = append(kept, j)
	}

	return kept
}

func sortJobs(ctx context.Context, cfg *config, cmp compare.Comparator[line], jobs []*job) error {
	opts := []bitonic.Option{bitonic.WithName("cli")}

	if cfg.parallel > 0 {
		opts = append(opts, bitonic.WithParallelism(bitonic.DefaultParallelThreshold, cfg.parallel))
	} else {
		opts = append(opts, bitonic.OptionsFromEnv(ctx)...)
	}

	sorter := bitonic.NewSorter(cmp, opts...)

	pending := make([]batch.Job[line], 0, len(jobs))
	owners := make([]*job, 0, len(jobs))

	for _, j := range jobs {
		if j.err != nil {
			continue
		}

		pending = append(pending, batch.Job[line]{Name: j.name, Data: j.data})
		owners = append(owners, j)
	}

	err := batch.Run(ctx, sorter, pending, batch.WithWorkers(cfg.workers))

	for i := range pending {
		owners[i].err = pending[i].Err
	}

	return err
}

func verify(cmp compare.Comparator[line], jobs []*job) {
	for _, j := range jobs {
		if j.err != nil {
			continue
		}

		switch {
		case !sequence.IsSortedBy(j.data, cmp):
			j.err = errNotSorted
		case !j.before.Equals(fingerprint(j.data)):
			j.err = errNotPermutation
		}
	}
}

// report writes every sorted input to stdout, separated by a header when
// there is more than one, and every failure to stderr.
func report(jobs []*job, stdout, stderr io.Writer) int {
	out := bufio.NewWriter(stdout)
	code := exitOK
	written := 0

	for _, j := range jobs {
		if j.err != nil {
			_, _ = fmt.Fprintf(stderr, "bitonic: %s: %v\n", j.name, j.err)
			code = exitFailed

			continue
		}

		if len(jobs) > 1 {
			if written > 0 {
				_ = out.WriteByte('\n')
			}

			_, _ = fmt.Fprintf(out, "==> %s <==\n", j.name)
		}

		written++

		for _, l := range j.data {
			_, _ = out.WriteString(l.text)
			_ = out.WriteByte('\n')
		}
	}

	if err := out.Flush(); err != nil {
		_, _ = fmt.Fprintf(stderr, "bitonic: %v\n", err)

		return exitFailed
	}

	return code
}
