// Package op defines the opcodes shared by the compiler, the virtual machine
// and the disassembler.
package op

import (
	"github.com/cloudcmds/loxcore/errz"
)

// Code is a single-byte opcode. The numeric values are part of the bytecode
// encoding and must not be reordered.
type Code byte

const (
	Constant     Code = 0
	Nil          Code = 1
	True         Code = 2
	False        Code = 3
	Pop          Code = 4
	GetGlobal    Code = 5
	DefineGlobal Code = 6
	SetGlobal    Code = 7
	Equal        Code = 8
	Greater      Code = 9
	Less         Code = 10
	Add          Code = 11
	Subtract     Code = 12
	Multiply     Code = 13
	Divide       Code = 14
	Not          Code = 15
	Negate       Code = 16
	Print        Code = 17
	Return       Code = 18
)

// Shape describes the operand layout that follows an opcode.
type Shape uint8

const (
	// Simple instructions have no operand bytes.
	Simple Shape = iota
	// ConstantIndexed instructions carry a one byte constant pool index.
	ConstantIndexed
)

// Info contains information about an opcode.
type Info struct {
	Code         Code
	Name         string
	Shape        Shape
	OperandCount int
}

// Width returns the total encoded size of the instruction in bytes.
func (i Info) Width() int {
	return 1 + i.OperandCount
}

var (
	infos [256]Info
	known [256]bool
)

func init() {
	type opInfo struct {
		op    Code
		name  string
		shape Shape
	}
	ops := []opInfo{
		{Constant, "OP_CONSTANT", ConstantIndexed},
		{Nil, "OP_NIL", Simple},
		{True, "OP_TRUE", Simple},
		{False, "OP_FALSE", Simple},
		{Pop, "OP_POP", Simple},
		{GetGlobal, "OP_GET_GLOBAL", ConstantIndexed},
		{DefineGlobal, "OP_DEFINE_GLOBAL", ConstantIndexed},
		{SetGlobal, "OP_SET_GLOBAL", ConstantIndexed},
		{Equal, "OP_EQUAL", Simple},
		{Greater, "OP_GREATER", Simple},
		{Less, "OP_LESS", Simple},
		{Add, "OP_ADD", Simple},
		{Subtract, "OP_SUBTRACT", Simple},
		{Multiply, "OP_MULTIPLY", Simple},
		{Divide, "OP_DIVIDE", Simple},
		{Not, "OP_NOT", Simple},
		{Negate, "OP_NEGATE", Simple},
		{Print, "OP_PRINT", Simple},
		{Return, "OP_RETURN", Simple},
	}
	for _, o := range ops {
		count := 0
		if o.shape == ConstantIndexed {
			count = 1
		}
		infos[o.op] = Info{
			Code:         o.op,
			Name:         o.name,
			Shape:        o.shape,
			OperandCount: count,
		}
		known[o.op] = true
	}
}

// GetInfo returns information about the given opcode. The zero Info is
// returned for bytes that are not opcodes.
func GetInfo(op Code) Info {
	return infos[op]
}

// Lookup decodes a raw byte, reporting whether it names a known opcode.
func Lookup(b byte) (Info, bool) {
	if !known[b] {
		return Info{}, false
	}
	return infos[b], true
}

// FromByte converts a raw byte into a Code.
func FromByte(b byte) (Code, error) {
	if !known[b] {
		return 0, errz.Errorf(errz.ErrMalformedBytecode, "unknown opcode %d", b)
	}
	return Code(b), nil
}

// Byte returns the encoded form of the opcode.
func (c Code) Byte() byte {
	return byte(c)
}

// IsValid reports whether c is one of the defined opcodes.
func (c Code) IsValid() bool {
	return known[c]
}

// String returns the opcode mnemonic, e.g. "OP_RETURN".
func (c Code) String() string {
	if !known[c] {
		return "OP_UNKNOWN"
	}
	return infos[c].Name
}
