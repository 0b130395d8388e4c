// Package bytecode provides Chunk, the unit of compiled code.
//
// A Chunk holds three parallel structures:
//
//   - the encoded instruction bytes
//   - one source line per byte, so the line of any offset is a slice lookup
//   - a constant pool of at most 256 values, indexed by one-byte operands
//
// The compiler is the only producer of chunk contents and appends to them
// monotonically:
//
//	chunk := bytecode.NewChunk()
//	if err := chunk.EmitConstant(value.Number(1.2), 1); err != nil {
//	    return err
//	}
//	chunk.WriteOp(op.Return, 1)
//
// Once a chunk is handed to the VM or the disassembler it is only read.
// Operand bytes carry the same line as the opcode they belong to.
//
// # Package Dependencies
//
// This package depends on [github.com/cloudcmds/loxcore/op] for the
// instruction encoding and on [github.com/cloudcmds/loxcore/value] for
// constants.
package bytecode
