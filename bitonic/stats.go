package bitonic

import (
	"go.uber.org/atomic"
)

// Stats counts the work done by a Sorter. The zero value is not usable; a
// Sorter creates its own. All counters are safe for concurrent use.
type Stats struct {
	sorts       *atomic.Int64
	failures    *atomic.Int64
	elements    *atomic.Int64
	comparisons *atomic.Int64
	swaps       *atomic.Int64
}

func newStats() *Stats {
	return &Stats{
		sorts:       atomic.NewInt64(0),
		failures:    atomic.NewInt64(0),
		elements:    atomic.NewInt64(0),
		comparisons: atomic.NewInt64(0),
		swaps:       atomic.NewInt64(0),
	}
}

// record is called once per compare-and-swap pass.
func (s *Stats) record(comparisons, swaps int) {
	s.comparisons.Add(int64(comparisons))
	s.swaps.Add(int64(swaps))
}

// Snapshot is a point-in-time copy of a Sorter's counters.
type Snapshot struct {
	// Sorts is the number of successful sorts.
	Sorts int64
	// Failures is the number of sorts rejected for their length.
	Failures int64
	// Elements is the total length of all successfully sorted sequences.
	Elements int64
	// Comparisons is the number of comparator calls.
	Comparisons int64
	// Swaps is the number of element exchanges.
	Swaps int64
}

// Snapshot reads every counter.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Sorts:       s.sorts.Load(),
		Failures:    s.failures.Load(),
		Elements:    s.elements.Load(),
		Comparisons: s.comparisons.Load(),
		Swaps:       s.swaps.Load(),
	}
}
