// Package sequence builds reproducible test inputs and checks sort outcomes.
//
// The generator is deterministic: the same count and seed always produce the
// same values, which keeps large sorting tests repeatable.
package sequence

import (
	"cmp"
	"math/rand/v2"

	"github.com/amp-labs/bitonic/compare"
)

// DefaultSeed is the seed used by NewUint32s.
const DefaultSeed uint64 = 0

// NewUint32s returns n pseudo-random uint32 values generated from DefaultSeed.
func NewUint32s(n int) []uint32 {
	return NewUint32sSeeded(n, DefaultSeed)
}

// NewUint32sSeeded returns n pseudo-random uint32 values generated from seed.
// A negative n yields an empty slice.
func NewUint32sSeeded(n int, seed uint64) []uint32 {
	if n < 0 {
		n = 0
	}

	rng := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec

	out := make([]uint32, n)
	for i := range out {
		out[i] = rng.Uint32()
	}

	return out
}

// IsAscending reports whether x is non-decreasing.
func IsAscending[T cmp.Ordered](x []T) bool {
	for i := 1; i < len(x); i++ {
		if x[i-1] > x[i] {
			return false
		}
	}

	return true
}

// IsDescending reports whether x is non-increasing.
func IsDescending[T cmp.Ordered](x []T) bool {
	for i := 1; i < len(x); i++ {
		if x[i-1] < x[i] {
			return false
		}
	}

	return true
}

// IsSortedBy reports whether no adjacent pair of x is out of order under c.
func IsSortedBy[T any](x []T, c compare.Comparator[T]) bool {
	for i := 1; i < len(x); i++ {
		if c(x[i-1], x[i]) == compare.Greater {
			return false
		}
	}

	return true
}
