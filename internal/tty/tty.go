// Package tty detects whether output goes to a terminal.
package tty

import (
	"io"
	"os"
)

// IsTTY returns true if the given file is a TTY.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// IsTerminal reports whether w is a file attached to a terminal.
// Buffers, pipes and regular files are not.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && IsTTY(f)
}

// LogFormat picks the log format for w when none was requested: text for
// a terminal, json otherwise so collectors get one record per line.
func LogFormat(requested string, w io.Writer) string {
	if requested != "" {
		return requested
	}
	if IsTerminal(w) {
		return "text"
	}
	return "json"
}
