package bitonic

import (
	"fmt"
	"strings"

	"github.com/amp-labs/bitonic/errors"
)

// Order selects one of the two built-in orderings accepted by Sort.
type Order int

const (
	// Ascending sorts into natural order.
	Ascending Order = iota
	// Descending sorts into the inverse of natural order.
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

func (o Order) validate() error {
	if o != Ascending && o != Descending {
		return fmt.Errorf("%w: %s", errors.ErrInvalidOrder, o)
	}

	return nil
}

// ParseOrder accepts "asc", "ascending", "desc" and "descending", ignoring case
// and surrounding whitespace.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %q", errors.ErrInvalidOrder, s)
	}
}
