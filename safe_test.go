package arena

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestNewSafeArena(t *testing.T) {
	s := NewSafeArena(1024)
	if s == nil {
		t.Fatal("NewSafeArena returned nil")
	}
	if s.a == nil {
		t.Fatal("SafeArena.a is nil")
	}
}

func TestSafeArenaAllocBytes(t *testing.T) {
	s := NewSafeArena(1024)

	b := s.AllocBytes(100)
	if len(b) != 100 {
		t.Errorf("AllocBytes(100) length = %d, want 100", len(b))
	}
	if p := s.Alloc(4, 4, 3); len(p) != 12 {
		t.Errorf("Alloc(4, 4, 3) length = %d, want 12", len(p))
	}
	if _, err := s.TryAlloc(1, 1, 2048); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("TryAlloc(2048) error = %v, want ErrOutOfMemory", err)
	}
}

func TestSafeArenaOperations(t *testing.T) {
	s := NewSafeArena(1024)

	cp := s.Checkpoint()
	s.AllocBytes(100)
	if s.SizeInUse() == 0 {
		t.Error("Expected non-zero size in use")
	}
	s.Restore(cp)
	if s.SizeInUse() != 0 {
		t.Error("Expected zero size in use after Restore")
	}

	s.AllocBytes(200)
	s.Reset()
	if s.SizeInUse() != 0 {
		t.Error("Expected zero size in use after Reset")
	}

	if err := s.Release(); err != nil {
		t.Fatalf("Release() = %v", err)
	}
	// After release, operations should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic after Release")
		}
	}()
	s.AllocBytes(100)
}

func TestSafeAllocFunctions(t *testing.T) {
	s := NewSafeArena(1024)

	ptr := SafeAlloc[int](s)
	if ptr == nil {
		t.Fatal("SafeAlloc[int] returned nil")
	}
	if *ptr != 0 {
		t.Errorf("SafeAlloc[int] value = %d, want 0", *ptr)
	}

	slice := SafeAllocSlice[int](s, 5)
	if len(slice) != 5 {
		t.Errorf("SafeAllocSlice length = %d, want 5", len(slice))
	}
	for i, v := range slice {
		if v != 0 {
			t.Errorf("slice[%d] = %d, want 0", i, v)
		}
	}

	result := SafeKeepAlive(s, ptr)
	if result != ptr {
		t.Error("SafeKeepAlive returned different pointer")
	}
}

func TestSafeArenaConcurrency(t *testing.T) {
	const numGoroutines = 10
	const numAllocsPerGoroutine = 100
	s := NewSafeArena(KiB(64))

	var g errgroup.Group
	for i := 0; i < numGoroutines; i++ {
		i := i
		g.Go(func() error {
			for j := 0; j < numAllocsPerGoroutine; j++ {
				var b []byte
				switch j % 3 {
				case 0:
					b = s.AllocBytes(16)
				case 1:
					b = SafeAllocSlice[byte](s, 16)
				case 2:
					b = s.Alloc(8, 8, 2)
				}
				// Every block is private to this goroutine; a lost update
				// in the allocator would show up as a clobbered marker.
				for k := range b {
					b[k] = byte(i)
				}
				runtime.Gosched()
				for k := range b {
					if b[k] != byte(i) {
						return errors.New("block shared between goroutines")
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if s.SizeInUse() < numGoroutines*numAllocsPerGoroutine*16 {
		t.Errorf("SizeInUse = %d, want at least %d", s.SizeInUse(), numGoroutines*numAllocsPerGoroutine*16)
	}
}

func TestSafeArenaConcurrentResetMetrics(t *testing.T) {
	s := NewSafeArena(KiB(16))
	const numWorkers = 5

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	// Workers doing allocations
	for i := 0; i < numWorkers-2; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.AllocBytes(32)
				runtime.Gosched()
			}
		}()
	}

	// Worker doing periodic resets
	go func() {
		defer wg.Done()
		for i := 0; i < 5; i++ {
			runtime.Gosched()
			s.Reset()
		}
	}()

	// Worker doing metrics reads
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			_ = s.SizeInUse()
			_ = s.Utilization()
			_ = s.Metrics()
			runtime.Gosched()
		}
	}()

	wg.Wait()
}

func BenchmarkSafeArena(b *testing.B) {
	s := NewSafeArena(MiB(1))

	b.Run("AllocBytes", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.AllocBytes(64)
			if i%1000 == 999 {
				s.Reset()
			}
		}
	})

	b.Run("SafeAlloc", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			SafeAlloc[int](s)
			if i%1000 == 999 {
				s.Reset()
			}
		}
	})
}

func BenchmarkSafeArenaConcurrent(b *testing.B) {
	s := NewSafeArena(MiB(1))

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			s.AllocBytes(64)
			i++
			if i%100 == 99 {
				s.Reset()
			}
		}
	})
}
