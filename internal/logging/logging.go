// Package logging builds the process logger from the --loglevel and
// --logformat flags.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
)

// Accepted values for the logging flags.
var (
	Levels  = []string{"warn", "debug", "info", "error"}
	Formats = []string{"text", "json"}
)

// DefaultLevel is the --loglevel default.
const DefaultLevel = "warn"

// ParseLevel maps a flag value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, errors.NewWithDetails(errors.EUsage, "invalid log level: "+s, map[string]string{
			"flag": "loglevel",
			"hint": "use one of: " + strings.Join(Levels, ", "),
		})
	}
}

// New returns a logger writing to w. verbose forces debug level.
func New(w io.Writer, level, format string, verbose bool) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, errors.NewWithDetails(errors.EUsage, "invalid log format: "+format, map[string]string{
			"flag": "logformat",
			"hint": "use one of: " + strings.Join(Formats, ", "),
		})
	}
	return slog.New(handler), nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
