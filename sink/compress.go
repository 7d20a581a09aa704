package sink

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Zstd compresses everything it accepts into a zstd stream.
// Close must be called to finish the stream.
type Zstd struct {
	enc *zstd.Encoder
}

// NewZstd returns a sink compressing into w.
func NewZstd(w io.Writer, opts ...zstd.EOption) (*Zstd, error) {
	enc, err := zstd.NewWriter(w, opts...)
	if err != nil {
		return nil, err
	}
	return &Zstd{enc: enc}, nil
}

func (z *Zstd) WriteBytes(p []byte) bool { return writeAll(z.enc, p) }

// Flush emits a frame boundary for the data written so far.
func (z *Zstd) Flush() error { return z.enc.Flush() }

func (z *Zstd) Close() error { return z.enc.Close() }

// LZ4 compresses everything it accepts into an lz4 frame.
// Close must be called to finish the frame.
type LZ4 struct {
	zw *lz4.Writer
}

// NewLZ4 returns a sink compressing into w.
func NewLZ4(w io.Writer, opts ...lz4.Option) (*LZ4, error) {
	zw := lz4.NewWriter(w)
	if err := zw.Apply(opts...); err != nil {
		return nil, err
	}
	return &LZ4{zw: zw}, nil
}

func (l *LZ4) WriteBytes(p []byte) bool { return writeAll(l.zw, p) }

func (l *LZ4) Flush() error { return l.zw.Flush() }

func (l *LZ4) Close() error { return l.zw.Close() }
