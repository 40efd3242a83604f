// Package batch sorts many independent sequences on a shared worker pool and
// loads those sequences from plain or compressed text files.
package batch

import (
	"context"
	"runtime"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/bitonic/bitonic"
	"github.com/amp-labs/bitonic/envutil"
	"github.com/amp-labs/bitonic/errors"
	"github.com/amp-labs/bitonic/logger"
	"github.com/amp-labs/bitonic/spans"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Job is one sequence to sort in place.
type Job[T any] struct {
	Name string
	Data []T

	// Err is set by Run when sorting this job failed.
	Err error
}

type options struct {
	workers int
}

// Option configures Run.
type Option func(*options)

// WithWorkers bounds how many jobs run at once. Values below 1 mean
// WorkersFromEnv.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WorkersFromEnv reads BITONIC_WORKERS, defaulting to the number of CPUs.
func WorkersFromEnv(ctx context.Context) int {
	dfl := runtime.NumCPU()

	n := envutil.Int[int](ctx, "BITONIC_WORKERS",
		envutil.Default(dfl),
		envutil.Validate(envutil.NonNegative[int]),
	).ValueOrElse(dfl)
	if n < 1 {
		return dfl
	}

	return n
}

// Run sorts every job with sorter, several at a time. It waits for all
// jobs, even after some have failed, and returns every failure joined into
// one error, each prefixed with its job name. Each job's own error is also
// stored in its Err field. A job rejected for its length keeps its data
// untouched.
//
// A panicking comparator fails only its own job.
func Run[T any](ctx context.Context, sorter *bitonic.Sorter[T], jobs []Job[T], opts ...Option) error {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	if o.workers < 1 {
		o.workers = WorkersFromEnv(ctx)
	}

	return spans.StartErr(ctx, "bitonic.batch",
		spans.WithAttribute("bitonic.jobs", attribute.IntValue(len(jobs))),
		spans.WithAttribute("bitonic.workers", attribute.IntValue(o.workers)),
	).Enter(func(ctx context.Context, _ trace.Span) error {
		return run(ctx, sorter, jobs, o.workers)
	})
}

func run[T any](ctx context.Context, sorter *bitonic.Sorter[T], jobs []Job[T], workers int) error {
	if len(jobs) == 0 {
		return nil
	}

	log := logger.Get(ctx)
	log.Debug("Starting batch", "jobs", len(jobs), "workers", workers)

	pool := pond.NewPool(workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	tasks := make([]pond.Task, len(jobs))

	for i, job := range jobs {
		tasks[i] = pool.SubmitErr(func() error {
			return sorter.Sort(ctx, job.Data)
		})
	}

	errs := &errors.Collection{}

	for i, task := range tasks {
		jobs[i].Err = task.Wait()

		if err := jobs[i].Err; err != nil {
			log.Debug("Batch job failed", "job", jobs[i].Name, "error", err)
			errs.Addf(err, "%s", jobs[i].Name)
		}
	}

	log.Debug("Finished batch", "jobs", len(jobs), "failed", errs.Len())

	return errs.GetError()
}
