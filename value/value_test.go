package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudcmds/loxcore/object"
)

func TestTruthiness(t *testing.T) {
	arena := object.NewArena()
	tests := []struct {
		name   string
		value  Value
		truthy bool
	}{
		{"nil", Nil(), false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero", Number(0.0), true},
		{"negative zero", Number(math.Copysign(0, -1)), true},
		{"number", Number(3.5), true},
		{"NaN", Number(math.NaN()), true},
		{"empty string", String(arena.Intern("")), true},
		{"string", String(arena.Intern("x")), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.truthy, tt.value.IsTruthy())
			assert.Equal(t, !tt.truthy, tt.value.IsFalsy())
		})
	}
}

func TestZeroValueIsNil(t *testing.T) {
	var v Value
	assert.True(t, v.IsNil())
	assert.Equal(t, Nil(), v)
}

func TestEqualsRespectsInterning(t *testing.T) {
	arena := object.NewArena()
	a := String(arena.Intern("x"))
	b := String(arena.Intern("x"))
	c := String(arena.Intern("y"))
	assert.True(t, a.Equals(b))
	assert.True(t, a == b)
	assert.False(t, a.Equals(c))
	assert.False(t, a == c)
}

func TestEquals(t *testing.T) {
	arena := object.NewArena()
	tests := []struct {
		name  string
		left  Value
		right Value
		want  bool
	}{
		{"nil nil", Nil(), Nil(), true},
		{"true true", Bool(true), Bool(true), true},
		{"true false", Bool(true), Bool(false), false},
		{"numbers", Number(1.5), Number(1.5), true},
		{"different numbers", Number(1), Number(2), false},
		{"signed zeros", Number(0), Number(math.Copysign(0, -1)), true},
		{"nil false", Nil(), Bool(false), false},
		{"zero false", Number(0), Bool(false), false},
		{"number string", Number(1), String(arena.Intern("1")), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.left.Equals(tt.right))
			assert.Equal(t, tt.want, tt.left == tt.right)
		})
	}
}

func TestNaNNeverEqual(t *testing.T) {
	nan := Number(math.NaN())
	assert.False(t, nan.Equals(nan))
	assert.False(t, nan == nan)
}

func TestStringsFromDifferentArenas(t *testing.T) {
	a := object.NewArena()
	b := object.NewArena()
	assert.False(t, String(a.Intern("x")).Equals(String(b.Intern("x"))))
}

func TestRender(t *testing.T) {
	arena := object.NewArena()
	tests := []struct {
		value Value
		want  string
	}{
		{Nil(), "nil"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number(3.14), "3.14"},
		{Number(1), "1"},
		{Number(-2.5), "-2.5"},
		{Number(1.0 / 3.0), "0.3333333333333333"},
		{Number(1e21), "1000000000000000000000"},
		{Number(1e-7), "0.0000001"},
		{Number(math.Copysign(0, -1)), "-0"},
		{Number(math.NaN()), "NaN"},
		{Number(math.Inf(1)), "inf"},
		{Number(math.Inf(-1)), "-inf"},
		{String(arena.Intern("hello world")), "hello world"},
		{String(arena.Intern("")), ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Render(arena))
		})
	}
}

func TestAccessors(t *testing.T) {
	arena := object.NewArena()
	ref := arena.Intern("s")

	assert.True(t, Bool(true).AsBool())
	assert.Equal(t, 2.5, Number(2.5).AsNumber())
	assert.Equal(t, ref, String(ref).AsString())
	assert.Equal(t, STRING, String(ref).Kind())
	assert.True(t, String(ref).IsString())
	assert.True(t, Number(1).IsNumber())
	assert.True(t, Bool(false).IsBool())

	assert.Panics(t, func() { Nil().AsNumber() })
	assert.Panics(t, func() { Number(1).AsString() })
	assert.Panics(t, func() { String(ref).AsBool() })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "nil", NIL.String())
	assert.Equal(t, "bool", BOOL.String())
	assert.Equal(t, "number", NUMBER.String())
	assert.Equal(t, "string", STRING.String())
	assert.Equal(t, "unknown", Kind(9).String())
}

func TestGoString(t *testing.T) {
	arena := object.NewArena()
	assert.Equal(t, "value.Nil()", Nil().GoString())
	assert.Equal(t, "value.Bool(true)", Bool(true).GoString())
	assert.Equal(t, "value.Number(2)", Number(2).GoString())
	assert.Equal(t, "value.String(ref(0))", String(arena.Intern("a")).GoString())
}
