// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/bitonic/compare"
)

// Sortable is a type that knows how to compare itself for equality and order.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare turns the Sortable capability into a three-way comparison.
func Compare[T Sortable[T]](a, b T) compare.Ordering {
	switch {
	case a.LessThan(b):
		return compare.Less
	case a.Equals(b):
		return compare.Equal
	default:
		return compare.Greater
	}
}

// Comparator returns Compare as a compare.Comparator for T.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return Compare[T]
}
