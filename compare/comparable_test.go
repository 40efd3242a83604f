package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// student implements Comparable by full-name equality.
type student struct {
	First string
	Last  string
	Age   int
}

func (s student) Equals(other student) bool {
	return s.First == other.First && s.Last == other.Last
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        student
		b        student
		expected bool
	}{
		{
			name:     "same name",
			a:        student{First: "Taro", Last: "Yamada", Age: 16},
			b:        student{First: "Taro", Last: "Yamada", Age: 17},
			expected: true,
		},
		{
			name:     "same family name only",
			a:        student{First: "Taro", Last: "Yamada"},
			b:        student{First: "Hanako", Last: "Yamada"},
			expected: false,
		},
		{
			name:     "zero values",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equals[student](tt.a, tt.b))
		})
	}
}
