// Package arena implements a fixed-capacity bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena hands out zeroed, aligned blocks from one region by advancing a
// cursor. Blocks are never freed one by one; instead the cursor is moved
// back, reclaiming everything allocated after that point at once. This is
// particularly useful for:
//
//   - Building short-lived strings and buffers without heap churn
//   - Scratch space scoped to one function call
//   - Bounding the memory a task may use
//
// # Basic Usage
//
//	a := arena.New(arena.KiB(64))
//	defer a.Release()
//
//	// Allocate raw bytes
//	buf := a.AllocBytes(1024)
//
//	// Allocate typed values (pointer-free types only)
//	ptr := arena.Alloc[MyStruct](a)
//	ints := arena.AllocSlice[int32](a, 100)
//
//	// Reclaim everything allocated after a checkpoint
//	cp := a.Checkpoint()
//	tmp := a.AllocBytes(512)
//	a.Restore(cp)
//
// # Scratch Arenas
//
// Arena values can be copied. A function that takes an Arena by value may
// allocate freely; when it returns, the caller's cursor has not moved:
//
//	func render(scratch arena.Arena, out *bufout.Writer) {
//		tmp := scratch.AllocBytes(256) // gone when render returns
//		...
//	}
//
//	render(a.Scratch(), w)
//
// Passing *Arena instead makes allocations persist in the caller.
//
// # Running Out of Memory
//
// The region never grows. When a request does not fit, Alloc writes
// "out of memory" to standard error and terminates the process without
// running deferred functions. Callers that prefer an error use TryAlloc,
// and WithOOMHandler installs a different handler.
//
// # Thread Safety
//
// Arena is not thread-safe. For concurrent access, use SafeArena:
//
//	s := arena.NewSafeArena(0)
//	defer s.Release()
//
//	buf := s.AllocBytes(1024)
//	ptr := arena.SafeAlloc[MyStruct](s)
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Memory in use: %d bytes\n", m.SizeInUse)
//	fmt.Printf("Remaining: %d bytes\n", m.Available)
package arena
