package bytecode

import (
	"github.com/hashicorp/go-multierror"

	"github.com/cloudcmds/loxcore/errz"
	"github.com/cloudcmds/loxcore/op"
)

// Validate checks the chunk's structure and returns every problem found,
// or nil. The returned error is a *multierror.Error whose entries are
// *errz.StructuredError values carrying the offending offset.
func (c *Chunk) Validate() error {
	var result *multierror.Error
	if len(c.lines) != len(c.code) {
		result = multierror.Append(result, errz.Errorf(errz.ErrLineTable,
			"line table has %d entries for %d bytes of code", len(c.lines), len(c.code)))
	}
	for offset := 0; offset < len(c.code); {
		b := c.code[offset]
		info, ok := op.Lookup(b)
		if !ok {
			result = multierror.Append(result, errz.AtOffset(errz.ErrMalformedBytecode,
				offset, "unknown opcode %d", b))
			offset++
			continue
		}
		if info.Shape == op.ConstantIndexed {
			if offset+1 >= len(c.code) {
				result = multierror.Append(result, errz.AtOffset(errz.ErrMalformedBytecode,
					offset, "%s is missing its operand", info.Name))
				offset++
				continue
			}
			index := int(c.code[offset+1])
			if index >= len(c.constants) {
				result = multierror.Append(result, errz.AtOffset(errz.ErrMalformedBytecode,
					offset, "%s refers to constant %d but the pool holds %d",
					info.Name, index, len(c.constants)))
			}
			if offset+1 < len(c.lines) && c.lines[offset+1] != c.lines[offset] {
				result = multierror.Append(result, errz.AtOffset(errz.ErrLineTable,
					offset+1, "operand line %d differs from opcode line %d",
					c.lines[offset+1], c.lines[offset]))
			}
		}
		offset += info.Width()
	}
	return result.ErrorOrNil()
}
