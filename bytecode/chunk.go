package bytecode

import (
	"github.com/cloudcmds/loxcore/errz"
	"github.com/cloudcmds/loxcore/op"
	"github.com/cloudcmds/loxcore/value"
)

// MaxConstants is the size limit of a chunk's constant pool, set by the
// one-byte constant operand.
const MaxConstants = 256

// Chunk is a compiled block of bytecode with its line table and constant
// pool.
type Chunk struct {
	code      []byte
	lines     []int
	constants []value.Value
}

// NewChunk returns an empty chunk.
func NewChunk() *Chunk {
	return &Chunk{}
}

// Write appends a raw byte produced by source line line.
func (c *Chunk) Write(b byte, line int) {
	c.code = append(c.code, b)
	c.lines = append(c.lines, line)
}

// WriteOp appends an opcode produced by source line line.
func (c *Chunk) WriteOp(code op.Code, line int) {
	c.Write(code.Byte(), line)
}

// AddConstant appends v to the constant pool and returns its index.
func (c *Chunk) AddConstant(v value.Value) (int, error) {
	if len(c.constants) >= MaxConstants {
		return 0, errz.Errorf(errz.ErrConstantLimit,
			"too many constants in one chunk (limit %d)", MaxConstants)
	}
	c.constants = append(c.constants, v)
	return len(c.constants) - 1, nil
}

// EmitConstant adds v to the constant pool and appends the instruction that
// loads it.
func (c *Chunk) EmitConstant(v value.Value, line int) error {
	return c.EmitIndexed(op.Constant, v, line)
}

// EmitIndexed adds v to the constant pool and appends a constant-indexed
// instruction referring to it, e.g. OP_DEFINE_GLOBAL with the global's name.
func (c *Chunk) EmitIndexed(code op.Code, v value.Value, line int) error {
	if op.GetInfo(code).Shape != op.ConstantIndexed {
		return errz.Errorf(errz.ErrMalformedBytecode, "%s takes no constant operand", code)
	}
	index, err := c.AddConstant(v)
	if err != nil {
		return err
	}
	c.WriteOp(code, line)
	c.Write(byte(index), line)
	return nil
}

// Len returns the number of bytes of code.
func (c *Chunk) Len() int {
	return len(c.code)
}

// ByteAt returns the byte at the given offset.
func (c *Chunk) ByteAt(offset int) byte {
	return c.code[offset]
}

// LineAt returns the source line of the byte at the given offset.
func (c *Chunk) LineAt(offset int) int {
	return c.lines[offset]
}

// LineCount returns the length of the line table. It equals Len for any
// chunk built with Write.
func (c *Chunk) LineCount() int {
	return len(c.lines)
}

// ConstantCount returns the number of constants.
func (c *Chunk) ConstantCount() int {
	return len(c.constants)
}

// ConstantAt returns the constant at the given index.
func (c *Chunk) ConstantAt(index int) value.Value {
	return c.constants[index]
}

// Code returns a copy of the encoded instructions.
func (c *Chunk) Code() []byte {
	dst := make([]byte, len(c.code))
	copy(dst, c.code)
	return dst
}
