//go:build !unix

package sink

import "os"

// FD is a raw file descriptor sink.
type FD int

const (
	Stdout FD = 1
	Stderr FD = 2
)

// WriteBytes writes p to the descriptor, resuming after short writes.
func (fd FD) WriteBytes(p []byte) bool {
	var f *os.File
	switch fd {
	case Stdout:
		f = os.Stdout
	case Stderr:
		f = os.Stderr
	default:
		f = os.NewFile(uintptr(fd), "")
	}
	return writeAll(f, p)
}
