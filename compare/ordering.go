package compare

import (
	"cmp"
	"sync"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ordering is the outcome of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// OrderingOf maps any integer comparison result onto an Ordering by its sign,
// so results from cmp.Compare, strings.Compare or a collator can be used directly.
func OrderingOf(n int) Ordering {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return Greater
	default:
		return Equal
	}
}

// Reverse flips Less and Greater. Equal stays Equal.
func (o Ordering) Reverse() Ordering {
	return -o
}

// Then returns o unless it is Equal, in which case the tie-breaker is
// evaluated and returned.
func (o Ordering) Then(tieBreak func() Ordering) Ordering {
	if o != Equal {
		return o
	}

	return tieBreak()
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(?)"
	}
}

// Comparer is the capability a type needs to order elements of T.
// Implementations must define a total order and must not mutate their arguments.
type Comparer[T any] interface {
	Compare(a, b T) Ordering
}

// Comparator is a function that defines a total order over T.
// It implements Comparer, in the same spirit as http.HandlerFunc.
type Comparator[T any] func(a, b T) Ordering

// Compare calls c(a, b).
func (c Comparator[T]) Compare(a, b T) Ordering {
	return c(a, b)
}

// Reverse returns a comparator for the inverse order of c.
func (c Comparator[T]) Reverse() Comparator[T] {
	return func(a, b T) Ordering {
		return c(b, a)
	}
}

// Then returns a comparator that orders by c first and by next whenever c
// considers two elements equal.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) Ordering {
		return c(a, b).Then(func() Ordering {
			return next(a, b)
		})
	}
}

// Natural orders values of any cmp.Ordered type ascending.
func Natural[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) Ordering {
		return OrderingOf(cmp.Compare(a, b))
	}
}

// Reverse returns a comparator for the inverse order of c.
func Reverse[T any](c Comparer[T]) Comparator[T] {
	return func(a, b T) Ordering {
		return c.Compare(b, a)
	}
}

// By orders elements of T by a key extracted from each element.
//
// Example:
//
//	byAge := compare.By(func(s Student) int { return s.Age })
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) Ordering {
		return OrderingOf(cmp.Compare(key(a), key(b)))
	}
}

// FromLess builds a comparator from a strict less-than predicate.
// Two elements are Equal when neither is less than the other.
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) Ordering {
		switch {
		case less(a, b):
			return Less
		case less(b, a):
			return Greater
		default:
			return Equal
		}
	}
}

// NaturalStrings orders strings the way a human would read them, treating
// runs of digits as numbers ("file2" < "file10").
func NaturalStrings() Comparator[string] {
	return FromLess(natsort.Compare)
}

// Collated orders strings using the collation rules for the given language.
//
// A collate.Collator keeps internal buffers, so calls are serialized and the
// comparator is safe to share across goroutines.
func Collated(tag language.Tag, opts ...collate.Option) Comparator[string] {
	var mu sync.Mutex

	col := collate.New(tag, opts...)

	return func(a, b string) Ordering {
		mu.Lock()
		defer mu.Unlock()

		return OrderingOf(col.CompareString(a, b))
	}
}
