//go:build unix

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// NewMapped creates an Arena over an anonymous memory mapping of capacity
// bytes. The region lives outside the Go heap and is unmapped by Release.
// If capacity <= 0, DefaultCapacity is used.
func NewMapped(capacity int, opts ...Option) (*Arena, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	buf, err := unix.Mmap(-1, 0, capacity, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %d bytes: %w", capacity, err)
	}
	a := NewFromBuffer(buf, opts...)
	a.release = func() error {
		return unix.Munmap(buf)
	}
	return a, nil
}
