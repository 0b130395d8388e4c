// Package loxcore ties together the object arena, runtime values and the
// bytecode disassembler for one program run.
//
// A compiler and VM share a single Session: the compiler interns strings
// and hands finished chunks to Compiled, and the VM calls Trace before
// each instruction. Both debug outputs are off unless enabled:
//
//	session := loxcore.New(loxcore.WithPrintCode(true))
//	chunk := bytecode.NewChunk()
//	_ = chunk.EmitConstant(session.String("hi"), 1)
//	chunk.WriteOp(op.Print, 1)
//	chunk.WriteOp(op.Return, 1)
//	if err := session.Compiled(chunk, "script"); err != nil {
//	    return err
//	}
package loxcore

import (
	"github.com/rs/zerolog"

	"github.com/cloudcmds/loxcore/bytecode"
	"github.com/cloudcmds/loxcore/dis"
	"github.com/cloudcmds/loxcore/object"
	"github.com/cloudcmds/loxcore/value"
)

// Session owns the arena of one program run and its debug output.
type Session struct {
	arena          *object.Arena
	dis            *dis.Disassembler
	log            zerolog.Logger
	printCode      bool
	traceExecution bool
}

// New returns a Session with an empty arena.
func New(opts ...Option) *Session {
	o := collectOptions(opts...)
	return &Session{
		arena: object.NewArena(
			object.WithLogger(o.logger),
			object.WithCapacity(o.arenaCapacity),
		),
		dis: dis.New(
			dis.WithWriter(o.out),
			dis.WithColor(o.color),
			dis.WithLogger(o.logger),
		),
		log:            o.logger,
		printCode:      o.printCode,
		traceExecution: o.traceExecution,
	}
}

// Arena returns the session's arena.
func (s *Session) Arena() *object.Arena {
	return s.arena
}

// String interns str and wraps the handle in a Value.
func (s *Session) String(str string) value.Value {
	return value.String(s.arena.Intern(str))
}

// Render returns the printed form of v.
func (s *Session) Render(v value.Value) string {
	return v.Render(s.arena)
}

// Compiled validates a chunk handed over by the compiler and, when code
// printing is enabled, writes its listing. A chunk that fails validation
// is not printed.
func (s *Session) Compiled(chunk *bytecode.Chunk, name string) error {
	if err := chunk.Validate(); err != nil {
		s.log.Error().Err(err).Str("chunk", name).Msg("invalid chunk")
		return err
	}
	if s.printCode {
		s.dis.Chunk(chunk, name, s.arena)
	}
	return nil
}

// Trace writes the instruction at offset when execution tracing is
// enabled. It returns the offset of the next instruction either way.
func (s *Session) Trace(chunk *bytecode.Chunk, offset int) int {
	if !s.traceExecution {
		return dis.Next(chunk, offset)
	}
	return s.dis.Instruction(chunk, offset, s.arena)
}
