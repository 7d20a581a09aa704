package s8

// Whitespace is a set of byte values treated as blank by TrimSet.
type Whitespace [4]uint64

// DefaultWhitespace holds space, tab, vertical tab, newline, carriage
// return and form feed.
var DefaultWhitespace = NewWhitespace(" \t\v\n\r\f")

// NewWhitespace returns the set of bytes in chars.
func NewWhitespace(chars string) Whitespace {
	var w Whitespace
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		w[c>>6] |= 1 << (c & 63)
	}
	return w
}

// Has reports whether c is in the set.
func (w *Whitespace) Has(c byte) bool {
	return w[c>>6]&(1<<(c&63)) != 0
}

// Trim strips leading and trailing DefaultWhitespace from s.
func Trim(s S8) S8 {
	return TrimSet(s, &DefaultWhitespace)
}

// TrimSet strips leading and trailing bytes in set from s.
func TrimSet(s S8, set *Whitespace) S8 {
	beg, end := 0, len(s)
	for beg < end && set.Has(s[beg]) {
		beg++
	}
	for end > beg && set.Has(s[end-1]) {
		end--
	}
	return s[beg:end]
}
