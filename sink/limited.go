package sink

import (
	"context"

	"golang.org/x/time/rate"
)

// Limited paces writes to another sink at a fixed byte rate.
type Limited struct {
	next Sink
	lim  *rate.Limiter
	ctx  context.Context
}

// NewLimited forwards to next at most bytesPerSec bytes per second, in
// pieces no larger than burst. A cancelled ctx fails the pending write.
func NewLimited(ctx context.Context, next Sink, bytesPerSec rate.Limit, burst int) *Limited {
	if burst <= 0 {
		burst = 1
	}
	return &Limited{next: next, lim: rate.NewLimiter(bytesPerSec, burst), ctx: ctx}
}

func (l *Limited) WriteBytes(p []byte) bool {
	burst := l.lim.Burst()
	for len(p) > 0 {
		n := min(len(p), burst)
		if err := l.lim.WaitN(l.ctx, n); err != nil {
			return false
		}
		if !l.next.WriteBytes(p[:n]) {
			return false
		}
		p = p[n:]
	}
	return true
}
