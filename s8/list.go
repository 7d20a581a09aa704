package s8

import (
	"unsafe"

	"github.com/pavanmanishd/arena/v2"
)

// List is a singly linked list of strings. Callers keep the first node
// returned by Append as the head.
type List struct {
	Val  S8
	Next *List
}

// Append links a new node holding v after tail, which may be nil, and
// returns the new node.
//
// The node's size is charged to a, so list growth is bounded by the arena
// like any other allocation. The node itself is an ordinary Go value: it
// holds pointers, which the collector would not see inside the arena.
func Append(a *arena.Arena, tail *List, v S8) *List {
	var n List
	a.Alloc(int(unsafe.Sizeof(n)), int(unsafe.Alignof(n)), 1)
	cur := &List{Val: v}
	if tail != nil {
		tail.Next = cur
	}
	return cur
}

// Len returns the number of nodes from l to the end of the list.
func (l *List) Len() int {
	n := 0
	for cur := l; cur != nil; cur = cur.Next {
		n++
	}
	return n
}

// ListConcat copies the strings of the list starting at head, in order,
// into one new string in a.
func ListConcat(a *arena.Arena, head *List) S8 {
	n := 0
	for cur := head; cur != nil; cur = cur.Next {
		n += len(cur.Val)
	}
	c := S8(a.AllocBytes(n))
	off := 0
	for cur := head; cur != nil; cur = cur.Next {
		off += copy(c[off:], cur.Val)
	}
	return c
}
