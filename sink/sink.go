// Package sink provides destinations for buffered output.
//
// A Sink accepts a run of bytes and reports whether all of them were taken.
// Implementations retry partial writes internally until every byte is
// accepted or an attempt makes no progress, which is reported as failure.
package sink

import "io"

// Sink is the byte-accepting destination a buffered writer flushes to.
type Sink interface {
	// WriteBytes writes all of p or reports false.
	WriteBytes(p []byte) bool
}

// Func adapts an ordinary function to the Sink interface.
type Func func(p []byte) bool

// WriteBytes calls f(p).
func (f Func) WriteBytes(p []byte) bool { return f(p) }

// Writer adapts an io.Writer to the Sink contract.
type Writer struct {
	W io.Writer
}

// NewWriter returns a Sink writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{W: w}
}

// WriteBytes loops over short writes. A write that returns an error or
// accepts nothing is a hard failure.
func (s *Writer) WriteBytes(p []byte) bool {
	return writeAll(s.W, p)
}

func writeAll(w io.Writer, p []byte) bool {
	for off := 0; off < len(p); {
		n, err := w.Write(p[off:])
		if err != nil || n < 1 {
			return false
		}
		off += n
	}
	return true
}
