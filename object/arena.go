package object

import (
	"unsafe"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"

	"github.com/cloudcmds/loxcore/errz"
)

// header is one arena slot.
type header struct {
	size int
	obj  HeapObject
}

var headerSize = int(unsafe.Sizeof(header{}))

// Arena owns heap objects. Objects are appended and never moved or freed,
// so a Ref stays valid for the lifetime of the arena that issued it.
//
// An Arena is owned by a single compiler or VM and is not safe for
// concurrent use.
type Arena struct {
	id      uuid.UUID
	objects []header
	strings map[string]Ref[*String]
	bytes   int
	log     zerolog.Logger
}

// Option configures an Arena.
type Option func(*config)

type config struct {
	logger   zerolog.Logger
	capacity int
}

// WithLogger sets the logger used to report allocations at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithCapacity preallocates room for n objects.
func WithCapacity(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

// NewArena returns an empty arena with a fresh identity.
func NewArena(opts ...Option) *Arena {
	cfg := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}
	id := uuid.Must(uuid.NewV4())
	return &Arena{
		id:      id,
		objects: make([]header, 0, cfg.capacity),
		strings: make(map[string]Ref[*String], cfg.capacity),
		log:     cfg.logger.With().Str("arena", id.String()).Logger(),
	}
}

// ID returns the identity tag carried by every Ref this arena issues.
func (a *Arena) ID() uuid.UUID {
	return a.id
}

// Len returns the number of objects in the arena.
func (a *Arena) Len() int {
	return len(a.objects)
}

// BytesAllocated returns the estimated memory held by the arena's objects,
// including slot headers.
func (a *Arena) BytesAllocated() int {
	return a.bytes
}

// InternedCount returns the number of distinct interned strings.
func (a *Arena) InternedCount() int {
	return len(a.strings)
}

// Allocate takes ownership of obj and returns a handle to it. The handle's
// index is the length of the arena before the call.
func Allocate[T Allocatable](a *Arena, obj T) Ref[T] {
	return alloc(a, obj)
}

func alloc[T HeapObject](a *Arena, obj T) Ref[T] {
	size := obj.Size() + headerSize
	index := len(a.objects)
	a.objects = append(a.objects, header{size: size, obj: obj})
	a.bytes += size
	a.log.Debug().
		Stringer("kind", obj.Kind()).
		Int("index", index).
		Int("size", size).
		Msg("allocated object")
	return Ref[T]{index: index, arena: a.id}
}

// Intern returns the canonical handle for s, allocating a slot only the
// first time a given content is seen.
func (a *Arena) Intern(s string) Ref[*String] {
	if ref, ok := a.strings[s]; ok {
		return ref
	}
	ref := alloc(a, &String{value: s})
	a.strings[s] = ref
	return ref
}

// Lookup returns the handle of an already interned string without
// allocating.
func (a *Arena) Lookup(s string) (Ref[*String], bool) {
	ref, ok := a.strings[s]
	return ref, ok
}

// Deref resolves ref to its object. The ref must have been issued by this
// arena; anything else is a programming error and panics with an
// *errz.StructuredError of kind errz.ErrHandleMisuse.
func Deref[T HeapObject](a *Arena, ref Ref[T]) T {
	if ref.IsZero() {
		panic(errz.Errorf(errz.ErrHandleMisuse, "dereference of zero handle"))
	}
	if ref.arena != a.id {
		panic(errz.Errorf(errz.ErrHandleMisuse,
			"handle %d belongs to arena %s, not %s", ref.index, ref.arena, a.id))
	}
	if ref.index < 0 || ref.index >= len(a.objects) {
		panic(errz.Errorf(errz.ErrHandleMisuse,
			"handle %d out of range (arena holds %d objects)", ref.index, len(a.objects)))
	}
	obj, ok := a.objects[ref.index].obj.(T)
	if !ok {
		panic(errz.Errorf(errz.ErrHandleMisuse,
			"handle %d addresses a %s object", ref.index, a.objects[ref.index].obj.Kind()))
	}
	return obj
}

// SizeOf returns the accounted size of the slot ref addresses, header
// included.
func SizeOf[T HeapObject](a *Arena, ref Ref[T]) int {
	Deref(a, ref)
	return a.objects[ref.index].size
}
