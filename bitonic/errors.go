package bitonic

import (
	"fmt"

	"github.com/amp-labs/bitonic/errors"
)

// LengthError is returned when the sequence length is not a power of two.
// The sequence is left untouched whenever it is returned.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s (len: %d)", errors.ErrNotPowerOfTwo.Error(), e.Length)
}

// Unwrap lets errors.Is(err, errors.ErrNotPowerOfTwo) match.
func (e *LengthError) Unwrap() error {
	return errors.ErrNotPowerOfTwo
}
