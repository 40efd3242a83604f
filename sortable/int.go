package sortable

// Int is a sortable wrapper type for the built-in int type.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Uint32 is a sortable wrapper type for uint32, the element type of the
// generated test vectors.
type Uint32 uint32

var _ Sortable[Uint32] = (*Uint32)(nil)

func (u Uint32) Equals(other Uint32) bool {
	return uint32(u) == uint32(other)
}

func (u Uint32) LessThan(other Uint32) bool {
	return uint32(u) < uint32(other)
}
