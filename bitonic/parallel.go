package bitonic

import (
	"context"

	"github.com/amp-labs/bitonic/simultaneously"
)

// forker decides when the two halves of a region are worth running on
// separate goroutines, and bounds how many extra goroutines one sort may use.
// A nil *forker never forks.
type forker struct {
	threshold int
	tokens    chan struct{}
}

func newForker(threshold, maxConcurrent int) *forker {
	if threshold < 2 || maxConcurrent < 2 { //nolint:mnd
		return nil
	}

	return &forker{
		threshold: threshold,
		// The calling goroutine is one of the maxConcurrent.
		tokens: make(chan struct{}, maxConcurrent-1),
	}
}

func (f *forker) shouldFork(n int) bool {
	return f != nil && n >= f.threshold
}

// run executes left and right, concurrently when a goroutine slot is free and
// inline otherwise. It never blocks waiting for a slot, so nested forks can't
// deadlock. A panic in either half is re-raised on the calling goroutine once
// both halves have stopped.
func (f *forker) run(left, right func()) {
	select {
	case f.tokens <- struct{}{}:
	default:
		left()
		right()

		return
	}

	defer func() { <-f.tokens }()

	err := simultaneously.Do(2, //nolint:mnd
		func(context.Context) error {
			left()

			return nil
		},
		func(context.Context) error {
			right()

			return nil
		},
	)
	if err != nil {
		panic(err)
	}
}
