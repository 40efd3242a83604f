package bitonic

import (
	"cmp"
	"math/bits"

	"github.com/amp-labs/bitonic/compare"
	"github.com/amp-labs/bitonic/sortable"
)

// Sort reorders x in place into the given order under the natural ordering of T.
//
// len(x) must be a power of two (zero is not one). Otherwise x is left
// untouched and a *LengthError carrying len(x) is returned. An order other
// than Ascending or Descending also leaves x untouched and returns an error
// wrapping errors.ErrInvalidOrder.
func Sort[T cmp.Ordered](x []T, order Order) error {
	if err := order.validate(); err != nil {
		return err
	}

	return SortBy(x, comparatorFor(compare.Natural[T](), order))
}

// SortSortable is Sort for element types that carry their own ordering
// through the sortable.Sortable capability.
func SortSortable[T sortable.Sortable[T]](x []T, order Order) error {
	if err := order.validate(); err != nil {
		return err
	}

	return SortBy(x, comparatorFor(sortable.Comparator[T](), order))
}

// SortBy reorders x in place so that it is non-decreasing under c.
//
// c must be a total order; a comparator that isn't yields an unspecified
// permutation of x, never a corrupted one. If c panics, the panic propagates
// and x is left partially reordered. len(x) must be a power of two, otherwise
// x is left untouched and a *LengthError is returned. A nil c panics.
func SortBy[T any](x []T, c compare.Comparator[T]) error {
	if c == nil {
		panic("bitonic: nil comparator")
	}

	if !IsPowerOfTwo(len(x)) {
		return &LengthError{Length: len(x)}
	}

	e := engine[T]{cmp: c}
	e.sort(x, true)

	return nil
}

// SortWith is SortBy for any value implementing the compare.Comparer capability.
func SortWith[T any](x []T, c compare.Comparer[T]) error {
	if c == nil {
		panic("bitonic: nil comparer")
	}

	return SortBy(x, c.Compare)
}

// IsPowerOfTwo reports whether n is 1, 2, 4, 8, ...
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Comparisons returns the number of comparator calls a sort of n elements
// performs. The bitonic network is data-oblivious, so this depends on n only.
// It returns 0 when n is not a power of two.
func Comparisons(n int) int {
	if !IsPowerOfTwo(n) {
		return 0
	}

	k := bits.TrailingZeros(uint(n))

	return n / 2 * k * (k + 1) / 2 //nolint:mnd
}

// comparatorFor maps an order intent onto a comparator: Ascending keeps c,
// Descending flips its arguments.
func comparatorFor[T any](c compare.Comparator[T], order Order) compare.Comparator[T] {
	if order == Descending {
		return c.Reverse()
	}

	return c
}

// engine runs the bitonic network over a slice. Regions are sub-slices of
// the caller's slice; the two halves of a split never overlap.
type engine[T any] struct {
	cmp compare.Comparator[T]

	// fork, when set, may run the two halves of a region concurrently.
	fork *forker

	// stats, when set, receives swap and comparison counts.
	stats *Stats
}

// sort builds a bitonic sequence out of x (left half forward, right half
// reversed) and merges it in the requested direction. The directions of the
// halves never depend on forward.
func (e *engine[T]) sort(x []T, forward bool) {
	if len(x) <= 1 {
		return
	}

	mid := len(x) / 2
	left, right := x[:mid], x[mid:]

	if e.fork.shouldFork(len(x)) {
		e.fork.run(
			func() { e.sort(left, true) },
			func() { e.sort(right, false) },
		)
	} else {
		e.sort(left, true)
		e.sort(right, false)
	}

	e.merge(x, forward)
}

// merge resolves a bitonic x into a single monotonic run.
func (e *engine[T]) merge(x []T, forward bool) {
	if len(x) <= 1 {
		return
	}

	e.compareAndSwap(x, forward)

	mid := len(x) / 2
	left, right := x[:mid], x[mid:]

	if e.fork.shouldFork(len(x)) {
		e.fork.run(
			func() { e.merge(left, forward) },
			func() { e.merge(right, forward) },
		)
	} else {
		e.merge(left, forward)
		e.merge(right, forward)
	}
}

// compareAndSwap compares x[i] with x[i+len(x)/2] for every i in the first
// half and swaps the pair when it is out of order for the direction.
func (e *engine[T]) compareAndSwap(x []T, forward bool) {
	swapWhen := compare.Greater
	if !forward {
		swapWhen = compare.Less
	}

	mid := len(x) / 2
	swaps := 0

	for i := range mid {
		if e.cmp(x[i], x[mid+i]) == swapWhen {
			x[i], x[mid+i] = x[mid+i], x[i]
			swaps++
		}
	}

	if e.stats != nil {
		e.stats.record(mid, swaps)
	}
}
