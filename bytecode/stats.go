package bytecode

import "github.com/cloudcmds/loxcore/op"

// Stats contains statistics about a chunk.
type Stats struct {
	// ByteCount is the length of the encoded code.
	ByteCount int

	// InstructionCount is the number of decoded instructions, unknown
	// bytes included.
	InstructionCount int

	// UnknownCount is the number of bytes that are not valid opcodes.
	UnknownCount int

	// ConstantCount is the number of constants in the constant pool.
	ConstantCount int

	// LineCount is the number of distinct source lines referenced.
	LineCount int

	// Opcodes counts the occurrences of each known opcode.
	Opcodes map[op.Code]int
}

// Stats walks the chunk the same way the disassembler does and tallies
// what it finds.
func (c *Chunk) Stats() Stats {
	stats := Stats{
		ByteCount:     len(c.code),
		ConstantCount: len(c.constants),
		Opcodes:       map[op.Code]int{},
	}
	lines := map[int]struct{}{}
	for _, line := range c.lines {
		lines[line] = struct{}{}
	}
	stats.LineCount = len(lines)

	for offset := 0; offset < len(c.code); {
		stats.InstructionCount++
		info, ok := op.Lookup(c.code[offset])
		if !ok {
			stats.UnknownCount++
			offset++
			continue
		}
		stats.Opcodes[info.Code]++
		offset += info.Width()
	}
	return stats
}
