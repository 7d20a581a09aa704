//go:build unix

package fatal

import "golang.org/x/sys/unix"

func exit(code int) {
	unix.Exit(code)
}
