// Package cliutil provides small helpers shared by the geomtools CLI.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer. A failed write is
// reported on stderr instead of being propagated; CLI output errors are
// not actionable by the caller.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
