package object

import (
	"fmt"

	"github.com/gofrs/uuid"
)

// Ref is a handle to an object of type T stored in an Arena. Refs are plain
// values: copy them freely and compare them with ==. Two refs are equal when
// they address the same slot of the same arena.
//
// The zero Ref addresses nothing; dereferencing it panics.
type Ref[T HeapObject] struct {
	index int
	arena uuid.UUID
}

// Index returns the arena slot the ref addresses.
func (r Ref[T]) Index() int {
	return r.index
}

// IsZero reports whether r is the zero Ref.
func (r Ref[T]) IsZero() bool {
	return r.arena == uuid.Nil
}

func (r Ref[T]) String() string {
	if r.IsZero() {
		return "ref(nil)"
	}
	return fmt.Sprintf("ref(%d)", r.index)
}
