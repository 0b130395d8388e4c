// Package value defines Value, the tagged union moved on the VM stack and
// stored in chunk constant pools.
package value

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cloudcmds/loxcore/object"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	NIL Kind = iota
	BOOL
	NUMBER
	STRING
)

func (k Kind) String() string {
	switch k {
	case NIL:
		return "nil"
	case BOOL:
		return "bool"
	case NUMBER:
		return "number"
	case STRING:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a runtime value. The zero Value is nil.
//
// Values are compared with == or Equals, which agree: numbers compare as
// float64 (so NaN is never equal to itself) and strings compare by handle.
// Since strings are interned, equal handles means equal content.
type Value struct {
	kind   Kind
	b      bool
	n      float64
	handle object.Ref[*object.String]
}

// Nil returns the nil value.
func Nil() Value {
	return Value{}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: BOOL, b: b}
}

// Number wraps a float64.
func Number(n float64) Value {
	return Value{kind: NUMBER, n: n}
}

// String wraps an interned string handle.
func String(ref object.Ref[*object.String]) Value {
	return Value{kind: STRING, handle: ref}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNil() bool    { return v.kind == NIL }
func (v Value) IsBool() bool   { return v.kind == BOOL }
func (v Value) IsNumber() bool { return v.kind == NUMBER }
func (v Value) IsString() bool { return v.kind == STRING }

// AsBool returns the boolean payload. It panics if v is not a bool.
func (v Value) AsBool() bool {
	v.mustBe(BOOL)
	return v.b
}

// AsNumber returns the numeric payload. It panics if v is not a number.
func (v Value) AsNumber() float64 {
	v.mustBe(NUMBER)
	return v.n
}

// AsString returns the string handle. It panics if v is not a string.
func (v Value) AsString() object.Ref[*object.String] {
	v.mustBe(STRING)
	return v.handle
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("value is %s, not %s", v.kind, k))
	}
}

// IsFalsy reports whether v is nil or false. Every other value, including
// the number zero and the empty string, is truthy.
func (v Value) IsFalsy() bool {
	switch v.kind {
	case NIL:
		return true
	case BOOL:
		return !v.b
	default:
		return false
	}
}

// IsTruthy is the negation of IsFalsy.
func (v Value) IsTruthy() bool {
	return !v.IsFalsy()
}

// Equals returns true if both values hold the same variant and payload.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NIL:
		return true
	case BOOL:
		return v.b == other.b
	case NUMBER:
		return v.n == other.n
	case STRING:
		return v.handle == other.handle
	default:
		return false
	}
}

// Render returns the text form used when printing or tracing. String
// contents are read through the arena that interned them.
func (v Value) Render(arena *object.Arena) string {
	switch v.kind {
	case NIL:
		return "nil"
	case BOOL:
		return strconv.FormatBool(v.b)
	case NUMBER:
		return FormatNumber(v.n)
	case STRING:
		return object.Deref(arena, v.handle).Value()
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}

// FormatNumber formats n as the shortest decimal that round-trips, without
// an exponent: 3.14, 1, -0, 1000000000000000000000. Infinities print as
// inf and -inf.
func FormatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// GoString supports %#v without an arena.
func (v Value) GoString() string {
	switch v.kind {
	case NIL:
		return "value.Nil()"
	case BOOL:
		return fmt.Sprintf("value.Bool(%t)", v.b)
	case NUMBER:
		return fmt.Sprintf("value.Number(%s)", FormatNumber(v.n))
	case STRING:
		return fmt.Sprintf("value.String(%s)", v.handle)
	default:
		return "value.Value{}"
	}
}
