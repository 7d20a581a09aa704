package arena

import (
	"fmt"
	"unsafe"
)

// Example demonstrates basic arena usage
func Example() {
	a := New(1024)
	defer a.Release()

	// Allocate raw bytes
	buf := a.AllocBytes(100)
	fmt.Printf("Allocated buffer of size: %d\n", len(buf))

	// Allocate a typed value (zeroed)
	ptr := Alloc[int64](a)
	*ptr = 42
	fmt.Printf("Allocated int64 with value: %d\n", *ptr)

	// Allocate a slice
	slice := AllocSlice[int32](a, 5)
	for i := range slice {
		slice[i] = int32(i * 2)
	}
	fmt.Printf("Allocated slice: %v\n", slice)

	// Check memory usage
	fmt.Printf("Memory in use: %d bytes\n", a.SizeInUse())
	fmt.Printf("Utilization: %.2f%%\n", a.Utilization()*100)

	// Reset for reuse (O(1) operation)
	a.Reset()
	fmt.Printf("After reset, memory in use: %d bytes\n", a.SizeInUse())

	// Output:
	// Allocated buffer of size: 100
	// Allocated int64 with value: 42
	// Allocated slice: [0 2 4 6 8]
	// Memory in use: 132 bytes
	// Utilization: 12.89%
	// After reset, memory in use: 0 bytes
}

// ExampleArena_Checkpoint demonstrates reclaiming a group of allocations
func ExampleArena_Checkpoint() {
	a := New(1024)
	defer a.Release()

	a.AllocBytes(64)
	cp := a.Checkpoint()

	for i := 0; i < 4; i++ {
		a.AllocBytes(128)
	}
	fmt.Printf("Before restore: %d bytes\n", a.SizeInUse())

	a.Restore(cp)
	fmt.Printf("After restore: %d bytes\n", a.SizeInUse())

	// Output:
	// Before restore: 576 bytes
	// After restore: 64 bytes
}

// ExampleArena_Scratch demonstrates the pass-by-value scratch idiom
func ExampleArena_Scratch() {
	a := New(1024)
	defer a.Release()

	a.AllocBytes(10)

	work := func(scratch Arena) int {
		scratch.AllocBytes(500)
		return scratch.SizeInUse()
	}

	fmt.Printf("Inside: %d bytes\n", work(a.Scratch()))
	fmt.Printf("Outside: %d bytes\n", a.SizeInUse())

	// Output:
	// Inside: 510 bytes
	// Outside: 10 bytes
}

// ExampleArena_TryAlloc demonstrates handling exhaustion as an error
func ExampleArena_TryAlloc() {
	a := New(10)
	defer a.Release()

	_, err := a.TryAlloc(1, 1, 11)
	fmt.Println(err)

	// Output:
	// arena: out of memory: 11 x 1 bytes (align 1), 10 available
}

// ExampleArenaMetrics demonstrates monitoring arena usage
func ExampleArenaMetrics() {
	a := New(1024)
	defer a.Release()

	a.AllocBytes(100)
	Alloc[int64](a)
	AllocSlice[int32](a, 50)

	metrics := a.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Size in use: %d bytes\n", metrics.SizeInUse)
	fmt.Printf("  Capacity: %d bytes\n", metrics.Capacity)
	fmt.Printf("  Available: %d bytes\n", metrics.Available)
	fmt.Printf("  Allocations: %d\n", metrics.Allocs)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)

	// Output:
	// Metrics:
	//   Size in use: 312 bytes
	//   Capacity: 1024 bytes
	//   Available: 712 bytes
	//   Allocations: 3
	//   Utilization: 30.5%
}

// ExampleArena_alignment demonstrates that allocations are properly aligned
func ExampleArena_alignment() {
	a := New(1024)
	defer a.Release()

	ptr1 := Alloc[int8](a)
	ptr2 := Alloc[int64](a) // Should be 8-byte aligned
	ptr3 := Alloc[int32](a) // Should be 4-byte aligned

	fmt.Printf("int8 address alignment: %d\n", uintptr(unsafe.Pointer(ptr1))%8)
	fmt.Printf("int64 address alignment: %d\n", uintptr(unsafe.Pointer(ptr2))%8)
	fmt.Printf("int32 address alignment: %d\n", uintptr(unsafe.Pointer(ptr3))%4)

	// Output:
	// int8 address alignment: 0
	// int64 address alignment: 0
	// int32 address alignment: 0
}
