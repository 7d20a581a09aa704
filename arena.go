// Package arena implements a fixed-capacity bump allocator (memory arena).
// Typical usage: create one arena per task, allocate many temporary
// objects from it, then Restore a checkpoint or Reset for O(1) cleanup.
package arena

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/pavanmanishd/arena/v2/internal/fatal"
)

// DefaultCapacity is the default capacity for new arenas (64 KiB).
const DefaultCapacity = 1 << 16

var (
	// ErrOutOfMemory is returned by TryAlloc when a request does not fit.
	ErrOutOfMemory = errors.New("arena: out of memory")
	// ErrReleased is returned when releasing an arena twice.
	ErrReleased = errors.New("arena: already released")
)

// OOMHandler is called with the ErrOutOfMemory-wrapping error when an
// allocation cannot be satisfied. It must not return.
type OOMHandler func(err error)

// Option configures an Arena.
type Option func(*Arena)

// WithOOMHandler replaces the default out-of-memory handler, which writes
// a diagnostic to standard error and terminates the process.
func WithOOMHandler(h OOMHandler) Option {
	return func(a *Arena) {
		a.onOOM = h
	}
}

// Arena is a bump allocator over one fixed region. Not goroutine-safe.
// Use SafeArena for concurrent access.
//
// Arena values are cheap to copy. A copy shares the region but has its own
// cursor, so allocations made through a copy never move the original's
// cursor. Passing an Arena by value gives the callee a scratch allocator
// that is reclaimed on return; passing *Arena makes allocations persist.
type Arena struct {
	buf     []byte // backing region; allocation never grows it
	off     int    // next free index in buf
	allocs  int
	onOOM   OOMHandler
	release func() error
}

// Checkpoint is a saved allocation position.
type Checkpoint struct {
	off    int
	allocs int
}

// New creates an Arena over a fresh heap region of capacity bytes.
// If capacity <= 0, DefaultCapacity is used.
func New(capacity int, opts ...Option) *Arena {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return NewFromBuffer(make([]byte, capacity), opts...)
}

// NewFromBuffer creates an Arena that allocates from buf.
// The caller keeps ownership of buf and must not use it while the arena does.
func NewFromBuffer(buf []byte, opts ...Option) *Arena {
	a := &Arena{buf: buf[:len(buf):len(buf)]}
	for _, opt := range opts {
		opt(a)
	}
	if a.buf == nil {
		a.buf = []byte{}
	}
	return a
}

// KiB returns n kibibytes.
func KiB(n int) int { return n << 10 }

// MiB returns n mebibytes.
func MiB(n int) int { return n << 20 }

// Alloc returns count zeroed objects of objSize bytes each, with the first
// byte aligned to align, which must be a power of two. If the region cannot
// hold the request, the out-of-memory handler runs and Alloc does not return.
func (a *Arena) Alloc(objSize, align, count int) []byte {
	p, err := a.TryAlloc(objSize, align, count)
	if err != nil {
		a.outOfMemory(err)
		panic("arena: out-of-memory handler returned")
	}
	return p
}

// TryAlloc is like Alloc but reports exhaustion as ErrOutOfMemory instead of
// invoking the out-of-memory handler. The arena is unchanged on error.
func (a *Arena) TryAlloc(objSize, align, count int) ([]byte, error) {
	a.panicIfReleased()
	if objSize <= 0 || count < 0 {
		panic(fmt.Sprintf("arena: invalid request of %d objects of size %d", count, objSize))
	}
	if align <= 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("arena: alignment %d is not a power of two", align))
	}

	avail := len(a.buf) - a.off
	padding := int(-a.addr() & uintptr(align-1))
	// Divide rather than multiply so count*objSize cannot overflow.
	if padding > avail || count > (avail-padding)/objSize {
		return nil, fmt.Errorf("%w: %d x %d bytes (align %d), %d available",
			ErrOutOfMemory, count, objSize, align, avail)
	}

	total := count * objSize
	beg := a.off + padding
	end := beg + total
	p := a.buf[beg:end:end]
	clear(p)
	a.off = end
	a.allocs++
	fatal.Assert(a.off <= len(a.buf))
	return p, nil
}

// AllocBytes returns n zeroed, unaligned bytes from the arena.
func (a *Arena) AllocBytes(n int) []byte {
	return a.Alloc(1, 1, n)
}

// Checkpoint records the current allocation position.
func (a *Arena) Checkpoint() Checkpoint {
	return Checkpoint{off: a.off, allocs: a.allocs}
}

// Restore rewinds the arena to cp. Every allocation made after cp was taken
// becomes garbage and will be overwritten by later allocations.
func (a *Arena) Restore(cp Checkpoint) {
	a.panicIfReleased()
	if cp.off < 0 || cp.off > a.off {
		panic(fmt.Sprintf("arena: checkpoint %d is ahead of cursor %d", cp.off, a.off))
	}
	a.off = cp.off
	a.allocs = cp.allocs
}

// Scratch returns a copy of the arena for temporary allocations.
// The receiver's cursor is unaffected by anything allocated from the copy.
func (a *Arena) Scratch() Arena {
	a.panicIfReleased()
	s := *a
	s.release = nil
	return s
}

// Reset rewinds the arena to the start of its region.
func (a *Arena) Reset() {
	a.Restore(Checkpoint{})
}

// Release drops the region and makes the arena unusable.
// Any subsequent allocation will panic.
func (a *Arena) Release() error {
	if a.buf == nil {
		return ErrReleased
	}
	var err error
	if a.release != nil {
		err = a.release()
	}
	a.buf = nil
	a.off = 0
	a.release = nil
	return err
}

func (a *Arena) outOfMemory(err error) {
	if a.onOOM != nil {
		a.onOOM(err)
		return
	}
	fatal.OutOfMemory()
}

// addr returns the address of the next free byte.
func (a *Arena) addr() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.buf))) + uintptr(a.off)
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic("arena: use after Release()")
	}
}
