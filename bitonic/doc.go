// Package bitonic sorts slices in place with the bitonic sorting network.
//
// The network only works on sequences whose length is a power of two. Every
// entry point checks that first and returns a *LengthError without touching
// the slice when it does not hold:
//
//	x := []int{10, 30, 11, 20, 4, 330, 21, 110}
//	if err := bitonic.Sort(x, bitonic.Descending); err != nil {
//	    return err
//	}
//
// Sort and SortSortable use the natural ordering of the element type. SortBy
// and SortWith accept any total order expressed as a compare.Comparator or
// compare.Comparer. Sorter wraps the same algorithm with logging, metrics,
// tracing and optional parallel execution of independent halves.
//
// The sort is not stable and performs Comparisons(len(x)) comparator calls
// regardless of the input.
package bitonic
