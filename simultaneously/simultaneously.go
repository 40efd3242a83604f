// Package simultaneously runs a fixed set of functions in parallel and joins
// on all of them, turning panics into errors so that a fault on a worker
// goroutine surfaces on the caller instead of crashing the process.
package simultaneously

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"

	amperrors "github.com/amp-labs/bitonic/errors"
)

// Do runs the given functions in parallel and waits for all of them.
// See DoCtx for more information.
func Do(maxConcurrent int, f ...func(ctx context.Context) error) error {
	return DoCtx(context.Background(), maxConcurrent, f...)
}

// DoCtx runs the given functions in parallel and returns once every one of
// them has finished. It returns nil if all succeeded, the single error if one
// failed, and errors.Join of all errors otherwise.
//
// When a function fails or panics, the context handed to the others is
// canceled; functions that haven't started yet are skipped and report the
// context error. It's up to running functions to check their context.
//
// The maxConcurrent parameter is used to limit the number of functions that run at the same time.
// If maxConcurrent is less than 1, all functions will run at the same time.
//
// Panics are recovered and returned as errors wrapping errors.ErrPanicRecovery,
// with the stack trace of the panicking goroutine attached.
func DoCtx(ctx context.Context, maxConcurrent int, callback ...func(ctx context.Context) error) error {
	if len(callback) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if maxConcurrent < 1 || maxConcurrent > len(callback) {
		maxConcurrent = len(callback)
	}

	// Buffered channel as a counting semaphore.
	sem := make(chan struct{}, maxConcurrent)

	errs := make([]error, len(callback))

	var waitGroup sync.WaitGroup

	invoke := func(idx int, fn func(context.Context) error) {
		defer waitGroup.Done()

		sem <- struct{}{}
		defer func() { <-sem }()

		defer func() {
			if r := recover(); r != nil {
				errs[idx] = amperrors.PanicError(r, debug.Stack())

				cancel()
			}
		}()

		if err := ctx.Err(); err != nil {
			errs[idx] = err

			return
		}

		if err := fn(ctx); err != nil {
			errs[idx] = err

			cancel()
		}
	}

	for idx, fn := range callback {
		waitGroup.Add(1)

		go invoke(idx, fn)
	}

	waitGroup.Wait()

	var failed []error

	for _, err := range errs {
		if err != nil {
			failed = append(failed, err)
		}
	}

	switch len(failed) {
	case 0:
		return nil
	case 1:
		return failed[0]
	default:
		return errors.Join(failed...)
	}
}
