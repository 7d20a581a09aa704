package arena

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T stored inside the arena.
// The returned pointer is valid as long as the arena hasn't been released
// and the allocation hasn't been reclaimed by Restore or Reset.
//
// T must not contain Go pointers: the garbage collector does not scan the
// arena's region, so a pointer stored there would not keep its target alive.
func Alloc[T any](a *Arena) *T {
	var zero T
	mustBePointerFree(reflect.TypeOf((*T)(nil)).Elem())
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return &zero
	}
	b := a.Alloc(size, int(unsafe.Alignof(zero)), 1)
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocSlice allocates a slice of n zeroed elements of type T inside the arena.
// Returns nil if n <= 0. The same restriction on T applies as for Alloc.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	mustBePointerFree(reflect.TypeOf((*T)(nil)).Elem())
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return make([]T, n)
	}
	b := a.Alloc(size, int(unsafe.Alignof(zero)), n)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// KeepAlive returns t and calls runtime.KeepAlive on the arena.
// This is useful to prevent the arena from being garbage collected
// while the pointer is still in use in unsafe code.
func KeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}

var pointerFree sync.Map // reflect.Type -> bool

func mustBePointerFree(t reflect.Type) {
	free, ok := pointerFree.Load(t)
	if !ok {
		free, _ = pointerFree.LoadOrStore(t, !hasPointers(t))
	}
	if !free.(bool) {
		panic(fmt.Sprintf("arena: cannot allocate %v, it contains pointers", t))
	}
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	default:
		return false
	}
}
