package loxcore

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Option configures a Session.
type Option func(*options)

type options struct {
	out            io.Writer
	color          bool
	logger         zerolog.Logger
	printCode      bool
	traceExecution bool
	arenaCapacity  int
}

func collectOptions(opts ...Option) *options {
	o := &options{out: os.Stdout, logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithOutput sets where listings and traces are written. Defaults to
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithColor enables colored listings.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

// WithLogger sets the logger shared by the arena and the disassembler.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPrintCode makes Compiled print a listing of every chunk it accepts.
func WithPrintCode(enabled bool) Option {
	return func(o *options) {
		o.printCode = enabled
	}
}

// WithTraceExecution makes Trace print each instruction before the VM
// executes it.
func WithTraceExecution(enabled bool) Option {
	return func(o *options) {
		o.traceExecution = enabled
	}
}

// WithArenaCapacity preallocates room for n heap objects.
func WithArenaCapacity(n int) Option {
	return func(o *options) {
		o.arenaCapacity = n
	}
}
