package arena

// SizeInUse returns the number of bytes allocated from the arena.
// This includes padding inserted for alignment.
func (a *Arena) SizeInUse() int {
	if a.buf == nil {
		return 0
	}
	return a.off
}

// Capacity returns the size of the arena's region in bytes.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Available returns the number of bytes not yet allocated.
func (a *Arena) Available() int {
	return len(a.buf) - a.off
}

// Allocs returns the number of live allocations, i.e. those made since the
// last Reset or since the restored checkpoint was taken.
func (a *Arena) Allocs() int {
	if a.buf == nil {
		return 0
	}
	return a.allocs
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Available:   a.Available(),
		Allocs:      a.Allocs(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Region size in bytes
	Available   int     // Bytes left
	Allocs      int     // Live allocations
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the number of bytes allocated.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// Capacity thread-safely returns the region size.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Available thread-safely returns the number of bytes left.
func (s *SafeArena) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Available()
}

// Utilization thread-safely returns the ratio of bytes in use to total capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
