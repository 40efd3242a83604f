// Package hashing computes order-independent fingerprints of sequences, so a
// sorted output can be checked to be a permutation of its input without
// keeping a copy of the input around.
package hashing

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Fingerprint summarises a multiset of elements. Two sequences holding the
// same elements with the same multiplicities, in any order, have equal
// fingerprints.
type Fingerprint struct {
	Count int
	Sum   uint64
	Xor   uint64
}

// Add folds the hash of one element into the fingerprint.
func (f *Fingerprint) Add(h uint64) {
	f.Count++
	f.Sum += h
	f.Xor ^= h
}

// Equals returns true if both fingerprints describe the same multiset (up to
// hash collisions).
func (f Fingerprint) Equals(other Fingerprint) bool {
	return f == other
}

// Multiset fingerprints x, hashing each element with hash.
func Multiset[T any](x []T, hash func(T) uint64) Fingerprint {
	var f Fingerprint

	for _, v := range x {
		f.Add(hash(v))
	}

	return f
}

// Uint32 hashes a single uint32 with xxh3.
func Uint32(v uint32) uint64 {
	var buf [4]byte

	binary.LittleEndian.PutUint32(buf[:], v)

	return xxh3.Hash(buf[:])
}

// Int64 hashes a single int64 with xxh3.
func Int64(v int64) uint64 {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(v))

	return xxh3.Hash(buf[:])
}

// String hashes a single string with xxh3.
func String(s string) uint64 {
	return xxh3.HashString(s)
}

// Uint32s fingerprints a slice of uint32.
func Uint32s(x []uint32) Fingerprint {
	return Multiset(x, Uint32)
}

// Strings fingerprints a slice of strings.
func Strings(x []string) Fingerprint {
	return Multiset(x, String)
}
