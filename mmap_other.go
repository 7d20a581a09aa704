//go:build !unix

package arena

// NewMapped falls back to a heap region on platforms without mmap.
func NewMapped(capacity int, opts ...Option) (*Arena, error) {
	return New(capacity, opts...), nil
}
