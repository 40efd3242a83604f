// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use with order-driven algorithms such
// as bitonic.SortSortable.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Uint32], and [String].
//
// The Sortable interface extends [github.com/amp-labs/bitonic/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// [Compare] folds the two methods into a single three-way
// [github.com/amp-labs/bitonic/compare.Ordering].
//
// # Usage
//
//	xs := []sortable.Int{42, 10, 25, 7}
//	if err := bitonic.SortSortable(xs, bitonic.Ascending); err != nil {
//	    return err
//	}
//	// xs is now 7, 10, 25, 42
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m Task) Equals(other Task) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m Task) LessThan(other Task) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// Equals and LessThan must agree with each other: exactly one of a.LessThan(b),
// a.Equals(b) and b.LessThan(a) holds for any pair.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe.
package sortable
