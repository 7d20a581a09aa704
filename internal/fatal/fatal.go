// Package fatal implements the process-terminating failure path.
//
// Nothing here unwinds: deferred functions do not run and no cleanup
// handlers are called.
package fatal

import "github.com/pavanmanishd/arena/v2/sink"

// Process exit codes.
const (
	ExitOutOfMemory = 1
	ExitAssert      = 2
	ExitFailure     = 3
)

const oomMessage = "out of memory\n"

// Terminate writes msg to the standard error descriptor and exits with code.
func Terminate(code int, msg string) {
	if msg != "" {
		sink.Stderr.WriteBytes([]byte(msg))
	}
	exit(code)
}

// OutOfMemory reports allocation exhaustion and exits.
func OutOfMemory() {
	Terminate(ExitOutOfMemory, oomMessage)
}

// Assert exits silently with ExitAssert when cond is false.
func Assert(cond bool) {
	if !cond {
		exit(ExitAssert)
	}
}
