package bufout

import "github.com/pavanmanishd/arena/v2/s8"

// Stream adapts a Writer to io.Writer so the fmt and io families can
// target it.
type Stream struct {
	w *Writer
}

// Stream returns an io.Writer view of w.
func (w *Writer) Stream() *Stream {
	return &Stream{w: w}
}

// Write buffers p. Unlike Writer.Write it reports failure: once the error
// flag is set it returns ErrSticky and accepts nothing.
func (s *Stream) Write(p []byte) (int, error) {
	if s.w.err {
		return 0, ErrSticky
	}
	s.w.Write(s8.S8(p))
	if s.w.err {
		return 0, ErrSticky
	}
	return len(p), nil
}
