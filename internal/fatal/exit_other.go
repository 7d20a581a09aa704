//go:build !unix

package fatal

import "os"

func exit(code int) {
	os.Exit(code)
}
