// Package object owns every heap-allocated runtime object.
//
// Objects live in an [Arena] and are addressed through typed handles of
// type [Ref]. A handle is an index into the arena plus the identity of the
// arena that issued it; it carries no lifetime information and is never
// invalidated, since the arena does not free or move objects.
//
// Strings are the only object kind today. They enter the arena exclusively
// through [Arena.Intern], so two strings with equal content always share a
// slot and their handles compare equal with ==:
//
//	arena := object.NewArena()
//	a := arena.Intern("x")
//	b := arena.Intern("x")
//	fmt.Println(a == b)                        // true
//	fmt.Println(object.Deref(arena, a).Value()) // x
package object

// Kind identifies the type of a heap object.
type Kind uint8

// Kind constants
const (
	STRING Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case STRING:
		return "string"
	default:
		return "unknown"
	}
}

// HeapObject is the interface that all objects stored in an Arena implement.
type HeapObject interface {
	// Kind of the object.
	Kind() Kind

	// Size estimates the memory held by the object, in bytes. It is used
	// for arena accounting only.
	Size() int
}

// Allocatable is satisfied by heap objects that may be placed in the arena
// with Allocate. Strings do not satisfy it; they are only created by Intern.
type Allocatable interface {
	HeapObject
	allocatable()
}
