package object

import "unsafe"

// String is an immutable interned string.
type String struct {
	value string
}

func (s *String) Kind() Kind {
	return STRING
}

func (s *String) Size() int {
	return int(unsafe.Sizeof(s.value)) + len(s.value)
}

// Value returns the string contents.
func (s *String) Value() string {
	return s.value
}

func (s *String) String() string {
	return s.value
}
