package compare

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestOrderingOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Less, OrderingOf(-42))
	assert.Equal(t, Equal, OrderingOf(0))
	assert.Equal(t, Greater, OrderingOf(7))
	assert.Equal(t, Less, OrderingOf(strings.Compare("a", "b")))
}

func TestOrdering_Reverse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Greater, Less.Reverse())
	assert.Equal(t, Equal, Equal.Reverse())
	assert.Equal(t, Less, Greater.Reverse())
}

func TestOrdering_Then(t *testing.T) {
	t.Parallel()

	called := false
	tie := func() Ordering {
		called = true

		return Greater
	}

	assert.Equal(t, Less, Less.Then(tie))
	assert.False(t, called, "tie-breaker must not run when the first key decides")

	assert.Equal(t, Greater, Equal.Then(tie))
	assert.True(t, called)
}

func TestOrdering_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, "Greater", Greater.String())
	assert.Equal(t, "Ordering(?)", Ordering(5).String())
}

func TestNatural(t *testing.T) {
	t.Parallel()

	ints := Natural[int]()
	assert.Equal(t, Less, ints(1, 2))
	assert.Equal(t, Equal, ints(2, 2))
	assert.Equal(t, Greater, ints(3, 2))

	strs := Natural[string]()
	assert.Equal(t, Less, strs("GC", "Rust"))
	assert.Equal(t, Less, strs("Rust", "and"))
}

func TestComparator_ReverseAndInterface(t *testing.T) {
	t.Parallel()

	asc := Natural[uint32]()

	var c Comparer[uint32] = asc

	assert.Equal(t, Less, c.Compare(1, 2))
	assert.Equal(t, Greater, asc.Reverse()(1, 2))
	assert.Equal(t, Greater, Reverse[uint32](asc)(1, 2))
	assert.Equal(t, Equal, Reverse[uint32](asc)(5, 5))
}

func TestBy_Then(t *testing.T) {
	t.Parallel()

	byName := By(func(s student) string { return s.Last }).
		Then(By(func(s student) string { return s.First }))

	taro := student{First: "Taro", Last: "Yamada"}
	hanako := student{First: "Hanako", Last: "Yamada"}
	kyoko := student{First: "Kyoko", Last: "Ito"}

	assert.Equal(t, Greater, byName(taro, hanako))
	assert.Equal(t, Less, byName(kyoko, hanako))
	assert.Equal(t, Equal, byName(taro, taro))
}

func TestFromLess(t *testing.T) {
	t.Parallel()

	byLen := FromLess(func(a, b string) bool { return len(a) < len(b) })

	assert.Equal(t, Less, byLen("a", "bb"))
	assert.Equal(t, Greater, byLen("ccc", "bb"))
	assert.Equal(t, Equal, byLen("ab", "cd"))
}

func TestNaturalStrings(t *testing.T) {
	t.Parallel()

	nat := NaturalStrings()

	assert.Equal(t, Less, nat("file2", "file10"))
	assert.Equal(t, Greater, nat("file10", "file2"))
	assert.Equal(t, Greater, Natural[string]()("file2", "file10"))
}

func TestCollated(t *testing.T) {
	t.Parallel()

	col := Collated(language.English)

	// Byte order puts every upper-case letter first; collation doesn't.
	assert.Equal(t, Less, col("and", "Rust"))
	assert.Equal(t, Greater, Natural[string]()("and", "Rust"))
	assert.Equal(t, Equal, col("fast", "fast"))

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				assert.Equal(t, Less, col("is", "memory-efficient"))
			}
		}()
	}

	wg.Wait()
}
