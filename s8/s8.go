// Package s8 implements byte-string views and the operations over them.
//
// An S8 is a borrowed, non-owning view of bytes. It is not
// NUL-terminated and no operation here writes through it. Operations that
// produce new bytes (Fill, Clone, Concat, ListConcat) take them from an
// arena; everything else returns a sub-view of its input and never
// allocates. A view is valid only as long as the bytes it borrows from.
package s8

import (
	"strings"
	"unsafe"

	"github.com/pavanmanishd/arena/v2"
)

// S8 is a view of a run of bytes. The nil S8 is the null, empty view.
type S8 []byte

// Lit wraps a string literal without copying.
// The returned view must never be written to.
func Lit(s string) S8 {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Text joins its arguments with spaces and collapses every run of
// whitespace to a single space, trimming both ends. It is meant for long
// literals written across several source lines.
func Text(parts ...string) S8 {
	return S8(strings.Join(strings.Fields(strings.Join(parts, " ")), " "))
}

// Wrap returns the view of cstr up to its first zero byte, at most maxLen
// bytes long.
func Wrap(cstr []byte, maxLen int) S8 {
	if cstr == nil || maxLen <= 0 {
		return nil
	}
	n := min(maxLen, len(cstr))
	if i := FindByte(cstr[:n], 0); i >= 0 {
		n = i
	}
	return S8(cstr[:n])
}

// Span returns the view of buf[beg:end]. It returns nil if buf is nil or
// end <= beg. Indices are clamped to buf.
func Span(buf []byte, beg, end int) S8 {
	if buf == nil || end <= beg {
		return nil
	}
	beg = clamp(beg, len(buf))
	end = clamp(end, len(buf))
	if end <= beg {
		return nil
	}
	return S8(buf[beg:end])
}

// Slice returns a sub-view of src. Negative offsets count from the end of
// src, and to == 0 means the end of src. If to resolves before from, the
// result is the empty view at the start of src: slicing backwards is
// refused, not reversed.
func Slice(src S8, from, to int) S8 {
	f := from
	if from < 0 {
		f = len(src) + from
	}
	t := to
	if to <= 0 {
		t = len(src) + to
	}
	f = clamp(f, len(src))
	t = clamp(t, len(src))
	if t < f {
		return src[:0]
	}
	return src[f:t]
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b S8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Compare returns the difference of the first mismatching bytes of a and
// b, or len(a)-len(b) if one is a prefix of the other.
func Compare(a, b S8) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if d := int(a[i]) - int(b[i]); d != 0 {
			return d
		}
	}
	return len(a) - len(b)
}

// Hash returns a 32-bit hash of s. The result is stable across calls and
// processes.
func Hash(s S8) uint32 {
	h := uint64(0x100)
	for _, c := range s {
		h ^= uint64(c)
		h *= 1111111111111111111
	}
	return uint32(h ^ h>>32)
}

// Find returns the index of the first occurrence of needle in haystack, or
// -1 if needle is empty or does not occur.
func Find(haystack, needle S8) int {
	if len(needle) == 0 || haystack == nil {
		return -1
	}
	i, j := 0, 0
	for i < len(haystack) {
		if haystack[i] == needle[j] {
			i++
			j++
			if j == len(needle) {
				return i - j
			}
			continue
		}
		// Resume one past where the partial match began.
		i = i - j + 1
		j = 0
	}
	return -1
}

// FindByte returns the index of the first c in haystack, or -1.
// Zero is a valid c.
func FindByte(haystack S8, c byte) int {
	for i, b := range haystack {
		if b == c {
			return i
		}
	}
	return -1
}

// Fill returns n bytes from a, each set to c.
func Fill(a *arena.Arena, c byte, n int) S8 {
	s := S8(a.AllocBytes(n))
	if c != 0 {
		for i := range s {
			s[i] = c
		}
	}
	return s
}

// Clone copies s into a.
func Clone(a *arena.Arena, s S8) S8 {
	c := S8(a.AllocBytes(len(s)))
	copy(c, s)
	return c
}

// Concat copies ss, in order, into one new string in a.
func Concat(a *arena.Arena, ss ...S8) S8 {
	n := 0
	for _, s := range ss {
		n += len(s)
	}
	c := S8(a.AllocBytes(n))
	off := 0
	for _, s := range ss {
		off += copy(c[off:], s)
	}
	return c
}

// ConcatRefs is Concat for callers holding pointers to their strings.
// Nil pointers are skipped.
func ConcatRefs(a *arena.Arena, ss ...*S8) S8 {
	n := 0
	for _, s := range ss {
		if s != nil {
			n += len(*s)
		}
	}
	c := S8(a.AllocBytes(n))
	off := 0
	for _, s := range ss {
		if s != nil {
			off += copy(c[off:], *s)
		}
	}
	return c
}

// String returns a copy of s as a Go string.
func (s S8) String() string {
	return string(s)
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
