// Package errz defines the error kinds raised by the object arena, the
// chunk encoder and the disassembler.
package errz

import (
	"fmt"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrMalformedBytecode indicates an unknown opcode, a truncated operand
	// or a constant index outside the constant pool.
	ErrMalformedBytecode ErrorKind = iota + 1
	// ErrHandleMisuse indicates a handle dereferenced against the wrong
	// arena, with the wrong type, or with an index out of range.
	ErrHandleMisuse
	// ErrConstantLimit indicates a chunk constant pool is full.
	ErrConstantLimit
	// ErrLineTable indicates the line table is out of step with the code.
	ErrLineTable
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedBytecode:
		return "malformed bytecode"
	case ErrHandleMisuse:
		return "handle misuse"
	case ErrConstantLimit:
		return "constant limit"
	case ErrLineTable:
		return "line table error"
	default:
		return "error"
	}
}

// StructuredError carries an error kind and, for bytecode errors, the
// offset in the chunk where the problem was found.
type StructuredError struct {
	Message string
	Kind    ErrorKind
	Offset  int
	Cause   error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
	}
	return fmt.Sprintf("%s: %s (offset %04d)", e.Kind.String(), e.Message, e.Offset)
}

// Unwrap returns the underlying cause of the error.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a StructuredError of the same kind. This
// lets callers match on kind alone:
//
//	errors.Is(err, &errz.StructuredError{Kind: errz.ErrConstantLimit})
func (e *StructuredError) Is(target error) bool {
	t, ok := target.(*StructuredError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// WithCause wraps the error with a cause.
func (e *StructuredError) WithCause(cause error) *StructuredError {
	e.Cause = cause
	return e
}

// Errorf creates a StructuredError that is not tied to a chunk offset.
func Errorf(kind ErrorKind, format string, args ...any) *StructuredError {
	return &StructuredError{
		Message: fmt.Sprintf(format, args...),
		Kind:    kind,
		Offset:  -1,
	}
}

// AtOffset creates a StructuredError that points at a chunk offset.
func AtOffset(kind ErrorKind, offset int, format string, args ...any) *StructuredError {
	return &StructuredError{
		Message: fmt.Sprintf(format, args...),
		Kind:    kind,
		Offset:  offset,
	}
}

// Kind returns the kind of err if it is, or wraps, a StructuredError.
func Kind(err error) (ErrorKind, bool) {
	for err != nil {
		if se, ok := err.(*StructuredError); ok {
			return se.Kind, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0, false
		}
		err = u.Unwrap()
	}
	return 0, false
}
