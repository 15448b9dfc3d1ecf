package errorutils

import (
	"fmt"
	"os"
)

func Try(err error) {
	if err != nil {
		panic(err)
	}
}

func Must[T any](v T, err error) T {
	Try(err)
	return v
}

// Exit prints err to stderr and terminates the process with code.
// A nil err is a no-op.
func Exit(err error, code int) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(code)
}
