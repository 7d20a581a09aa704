package arena

import (
	"runtime"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for callers that share
// one region between goroutines. Arena itself has no lock.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a thread-safe arena with the specified capacity.
// If capacity <= 0, DefaultCapacity is used.
func NewSafeArena(capacity int, opts ...Option) *SafeArena {
	return &SafeArena{a: New(capacity, opts...)}
}

// Alloc thread-safely allocates count zeroed objects of objSize bytes.
func (s *SafeArena) Alloc(objSize, align, count int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(objSize, align, count)
}

// TryAlloc thread-safely allocates, returning ErrOutOfMemory on exhaustion.
func (s *SafeArena) TryAlloc(objSize, align, count int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TryAlloc(objSize, align, count)
}

// AllocBytes thread-safely allocates n zeroed bytes.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// Checkpoint thread-safely records the current allocation position.
func (s *SafeArena) Checkpoint() Checkpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Checkpoint()
}

// Restore thread-safely rewinds the arena to cp.
func (s *SafeArena) Restore(cp Checkpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Restore(cp)
}

// Reset thread-safely rewinds the arena to the start of its region.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops the region and makes the arena unusable.
func (s *SafeArena) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Release()
}

// Generic allocation functions for SafeArena

// SafeAlloc thread-safely returns a pointer to a zeroed T inside the arena.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n zeroed elements.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeKeepAlive thread-safely returns t and calls runtime.KeepAlive on the arena.
func SafeKeepAlive[T any](s *SafeArena, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.a)
	return t
}
