// Package errors holds the sentinel errors shared across the module and a
// small accumulator for reporting several failures at once.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPowerOfTwo is the root of every length-precondition failure.
	// A *bitonic.LengthError unwraps to it.
	ErrNotPowerOfTwo = errors.New("length is not a power of two")

	// ErrInvalidOrder is returned when an order name can't be parsed.
	ErrInvalidOrder = errors.New("invalid sort order")

	// ErrPanicRecovery wraps a panic that was recovered on a worker goroutine.
	ErrPanicRecovery = errors.New("panic recovered")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf wraps err with a formatted prefix before adding it. Nil errors are ignored.
func (c *Collection) Addf(err error, format string, args ...any) {
	if err == nil {
		return
	}

	c.errors = append(c.errors, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err))
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

// PanicError converts a recovered panic value and an optional stack trace
// into an error wrapping ErrPanicRecovery. A nil value yields nil.
func PanicError(recovered any, stack []byte) error {
	if recovered == nil {
		return nil
	}

	var err error
	if e, ok := recovered.(error); ok {
		err = fmt.Errorf("%w: %w", ErrPanicRecovery, e)
	} else {
		err = fmt.Errorf("%w: %v", ErrPanicRecovery, recovered)
	}

	if stack != nil {
		return fmt.Errorf("%w\nstack trace:\n%s", err, string(stack))
	}

	return err
}
