// Package dis decodes chunks back into readable instruction listings.
//
// The listing format, one instruction per line, is:
//
//	0000    1 OP_CONSTANT         0 '3.14'
//	0002    | OP_RETURN
//
// The first column is the byte offset and the second the source line, or
// "|" when the line is the same as the previous byte's. Unknown bytes are
// reported as "Unknown opcode N" and decoding resumes at the next byte.
package dis

import (
	"fmt"

	"github.com/cloudcmds/loxcore/bytecode"
	"github.com/cloudcmds/loxcore/object"
	"github.com/cloudcmds/loxcore/op"
)

const (
	missingOperand  = "<missing operand>"
	invalidConstant = "<invalid constant>"
)

// Instruction is a single decoded instruction.
type Instruction struct {
	// Offset of the opcode byte.
	Offset int
	// Next is the offset of the following instruction.
	Next int
	// Line is the source line of the opcode byte.
	Line int
	// SameLine is set when Line repeats the line of the preceding byte.
	SameLine bool
	// Byte is the raw opcode byte.
	Byte byte
	// Known is false for bytes that are not opcodes.
	Known bool
	Info  op.Info
	// Operand is the constant index, or -1 for instructions without one.
	Operand int
	// Constant is the rendered constant for constant-indexed instructions.
	Constant string
	// Diagnostic describes a malformed instruction. Empty when well formed.
	Diagnostic string
}

// Decode decodes the instruction at offset. It always makes progress:
// Next is greater than Offset and never past the end of the chunk for an
// in-range offset.
func Decode(chunk *bytecode.Chunk, offset int, arena *object.Arena) Instruction {
	instr := Instruction{Offset: offset, Next: offset + 1, Operand: -1}
	if offset < 0 || offset >= chunk.Len() {
		instr.Diagnostic = fmt.Sprintf("offset %d out of range", offset)
		return instr
	}
	instr.Line = chunk.LineAt(offset)
	instr.SameLine = offset > 0 && chunk.LineAt(offset) == chunk.LineAt(offset-1)
	instr.Byte = chunk.ByteAt(offset)

	info, ok := op.Lookup(instr.Byte)
	if !ok {
		instr.Diagnostic = fmt.Sprintf("Unknown opcode %d", instr.Byte)
		return instr
	}
	instr.Known = true
	instr.Info = info
	if info.Shape == op.Simple {
		return instr
	}

	if offset+1 >= chunk.Len() {
		instr.Diagnostic = missingOperand
		return instr
	}
	instr.Operand = int(chunk.ByteAt(offset + 1))
	instr.Next = offset + 2
	if instr.Operand >= chunk.ConstantCount() {
		instr.Diagnostic = invalidConstant
		instr.Constant = invalidConstant
		return instr
	}
	instr.Constant = chunk.ConstantAt(instr.Operand).Render(arena)
	return instr
}

// Next returns the offset of the instruction following the one at offset,
// using the same resynchronization rules as Decode but rendering nothing.
func Next(chunk *bytecode.Chunk, offset int) int {
	if offset < 0 || offset+1 >= chunk.Len() {
		return offset + 1
	}
	info, ok := op.Lookup(chunk.ByteAt(offset))
	if !ok {
		return offset + 1
	}
	return offset + info.Width()
}

// Disassemble decodes the whole chunk. Offsets of the returned
// instructions strictly increase and the last instruction's Next equals
// chunk.Len().
func Disassemble(chunk *bytecode.Chunk, arena *object.Arena) []Instruction {
	var instructions []Instruction
	for offset := 0; offset < chunk.Len(); {
		instr := Decode(chunk, offset, arena)
		instructions = append(instructions, instr)
		offset = instr.Next
	}
	return instructions
}

// Format returns the listing line for the instruction, without a trailing
// newline.
func (i Instruction) Format() string {
	return i.prefix() + i.body(plain, plain, plain)
}

func (i Instruction) prefix() string {
	if i.SameLine {
		return fmt.Sprintf("%04d    | ", i.Offset)
	}
	return fmt.Sprintf("%04d %4d ", i.Offset, i.Line)
}

func plain(s string) string { return s }

func (i Instruction) body(mnemonic, constant, problem func(string) string) string {
	if !i.Known {
		return problem(i.Diagnostic)
	}
	if i.Info.Shape == op.Simple {
		return mnemonic(i.Info.Name)
	}
	name := mnemonic(fmt.Sprintf("%-16s", i.Info.Name))
	if i.Operand < 0 {
		return name + " " + problem(i.Diagnostic)
	}
	return fmt.Sprintf("%s %4d '%s'", name, i.Operand, constant(i.Constant))
}
