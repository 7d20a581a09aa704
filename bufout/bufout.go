// Package bufout implements buffered output with a sticky error.
//
// A Writer collects bytes in a fixed buffer, usually taken from an arena,
// and hands them to a sink whenever the buffer fills or Flush is called.
// The first failed flush sets the writer's error flag. From then on every
// Write and Flush is a no-op and buffered bytes are discarded, so callers
// can emit a whole document and check Err once at the end.
package bufout

import (
	"errors"
	"log/slog"

	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/internal/fatal"
	"github.com/pavanmanishd/arena/v2/s8"
	"github.com/pavanmanishd/arena/v2/sink"
)

// ErrSticky is returned by the io.Writer adapter once the writer has failed.
var ErrSticky = errors.New("bufout: earlier flush failed")

var newline = s8.Lit("\n")

// Option configures a Writer.
type Option func(*Writer)

// WithLogger logs flushes at debug level and the first failure at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(w *Writer) {
		w.log = l
	}
}

// Writer is a buffered writer over a sink. Not goroutine-safe.
type Writer struct {
	buf     []byte
	n       int
	dst     sink.Sink
	err     bool
	log     *slog.Logger
	flushes int
}

// New returns a Writer whose capacity-byte buffer is allocated from a.
func New(a *arena.Arena, capacity int, dst sink.Sink, opts ...Option) *Writer {
	if capacity <= 0 {
		panic("bufout: capacity must be positive")
	}
	return NewWithBuffer(a.AllocBytes(capacity), dst, opts...)
}

// NewWithBuffer returns a Writer that buffers into buf.
func NewWithBuffer(buf []byte, dst sink.Sink, opts ...Option) *Writer {
	if len(buf) == 0 {
		panic("bufout: empty buffer")
	}
	w := &Writer{buf: buf, dst: dst}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write appends s to the buffer, flushing each time the buffer fills.
// It does nothing once the error flag is set.
func (w *Writer) Write(s s8.S8) {
	for !w.err && len(s) > 0 {
		c := copy(w.buf[w.n:], s)
		s = s[c:]
		w.n += c
		fatal.Assert(w.n <= len(w.buf))
		if w.n == len(w.buf) {
			w.Flush()
		}
	}
}

// WriteLine writes s followed by a newline.
func (w *Writer) WriteLine(s s8.S8) {
	w.Write(s)
	w.Write(newline)
}

// WriteString writes str without converting it first.
func (w *Writer) WriteString(str string) {
	w.Write(s8.Lit(str))
}

// Flush hands the buffered bytes to the sink in one call. Whatever the
// outcome, the buffer is empty afterwards: on failure the bytes are lost
// and the error flag is set.
func (w *Writer) Flush() {
	if w.err || w.n == 0 {
		return
	}
	n := w.n
	w.err = !w.dst.WriteBytes(w.buf[:n])
	w.n = 0
	w.flushes++
	if w.log == nil {
		return
	}
	if w.err {
		w.log.Warn("bufout: flush failed, discarding output", "bytes", n, "flushes", w.flushes)
		return
	}
	w.log.Debug("bufout: flushed", "bytes", n, "flushes", w.flushes)
}

// Err reports whether a flush has failed.
func (w *Writer) Err() bool { return w.err }

// ClearErr re-enables the writer after a failure. Nothing calls it
// implicitly.
func (w *Writer) ClearErr() { w.err = false }

// Buffered returns the number of bytes waiting to be flushed.
func (w *Writer) Buffered() int { return w.n }

// Cap returns the buffer size.
func (w *Writer) Cap() int { return len(w.buf) }

// Flushes returns the number of flush attempts that reached the sink.
func (w *Writer) Flushes() int { return w.flushes }
