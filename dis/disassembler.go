package dis

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/cloudcmds/loxcore/bytecode"
	"github.com/cloudcmds/loxcore/object"
)

// Option configures a Disassembler.
type Option func(*config)

type config struct {
	writer io.Writer
	color  bool
	logger zerolog.Logger
}

// WithWriter sets the destination of the listing. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(cfg *config) {
		cfg.writer = w
	}
}

// WithColor enables ANSI colors: bold mnemonics, green constants and red
// diagnostics. Off by default so the output is stable for golden files.
func WithColor(enabled bool) Option {
	return func(cfg *config) {
		cfg.color = enabled
	}
}

// WithLogger sets the logger used to report malformed bytecode at warn
// level.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Disassembler writes chunk listings. It holds no state between calls, so
// one instance can trace a VM for its whole run.
type Disassembler struct {
	w        io.Writer
	log      zerolog.Logger
	mnemonic func(string) string
	constant func(string) string
	problem  func(string) string
}

// New returns a Disassembler configured by opts.
func New(opts ...Option) *Disassembler {
	cfg := &config{writer: os.Stdout, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}
	d := &Disassembler{
		w:        cfg.writer,
		log:      cfg.logger,
		mnemonic: plain,
		constant: plain,
		problem:  plain,
	}
	if cfg.color {
		d.mnemonic = sprint(color.Bold)
		d.constant = sprint(color.FgGreen)
		d.problem = sprint(color.FgRed)
	}
	return d
}

func sprint(attr color.Attribute) func(string) string {
	c := color.New(attr)
	c.EnableColor()
	return func(s string) string {
		return c.Sprint(s)
	}
}

// Chunk writes a header followed by every instruction in the chunk.
func (d *Disassembler) Chunk(chunk *bytecode.Chunk, name string, arena *object.Arena) {
	fmt.Fprintf(d.w, "== %s ==\n", name)
	for offset := 0; offset < chunk.Len(); {
		offset = d.Instruction(chunk, offset, arena)
	}
}

// Instruction writes the instruction at offset and returns the offset of
// the next one. The VM calls this before executing each instruction when
// tracing.
func (d *Disassembler) Instruction(chunk *bytecode.Chunk, offset int, arena *object.Arena) int {
	instr := Decode(chunk, offset, arena)
	d.write(instr)
	return instr.Next
}

// Print writes already decoded instructions.
func (d *Disassembler) Print(instructions []Instruction) {
	for _, instr := range instructions {
		d.write(instr)
	}
}

func (d *Disassembler) write(instr Instruction) {
	if instr.Diagnostic != "" {
		d.log.Warn().
			Int("offset", instr.Offset).
			Uint8("byte", instr.Byte).
			Msg(instr.Diagnostic)
	}
	fmt.Fprintln(d.w, instr.prefix()+instr.body(d.mnemonic, d.constant, d.problem))
}
