package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiset_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := Uint32s([]uint32{10, 30, 11, 20, 4, 330, 21, 110})
	b := Uint32s([]uint32{4, 10, 11, 20, 21, 30, 110, 330})

	assert.True(t, a.Equals(b))
	assert.Equal(t, 8, a.Count)
}

func TestMultiset_DetectsDifferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  []string
		right []string
	}{
		{name: "different element", left: []string{"a", "b"}, right: []string{"a", "c"}},
		{name: "duplicate lost", left: []string{"a", "a", "b"}, right: []string{"a", "b", "b"}},
		{name: "different length", left: []string{"a"}, right: []string{"a", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.False(t, Strings(tt.left).Equals(Strings(tt.right)))
		})
	}
}

func TestHashers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Uint32(42), Uint32(42))
	assert.NotEqual(t, Uint32(42), Uint32(43))
	assert.NotEqual(t, Int64(-1), Int64(1))
	assert.Equal(t, String("GC"), String("GC"))
	assert.Equal(t, Fingerprint{}, Strings(nil))
}
