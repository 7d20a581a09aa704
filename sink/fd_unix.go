//go:build unix

package sink

import "golang.org/x/sys/unix"

// FD is a raw file descriptor sink.
type FD int

const (
	Stdout FD = 1
	Stderr FD = 2
)

// WriteBytes writes p with write(2), resuming after short writes.
// A call that returns an error or zero bytes fails the whole write.
func (fd FD) WriteBytes(p []byte) bool {
	for off := 0; off < len(p); {
		n, err := unix.Write(int(fd), p[off:])
		if err == unix.EINTR {
			continue
		}
		if err != nil || n < 1 {
			return false
		}
		off += n
	}
	return true
}
