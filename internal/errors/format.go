// Package errors provides error formatting for filemyrti CLI output.
package errors

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// PrintOptions controls error output formatting.
type PrintOptions struct {
	// Verbose enables detailed error output with more context keys and an extra: section.
	Verbose bool
}

// Context key whitelist (default mode, in order)
var defaultContextKeys = []string{
	"op",
	"slug",
	"state",
	"department",
	"field",
	"url",
	"status",
	"config",
	"visitor",
}

// Additional context keys for verbose mode
var verboseContextKeys = []string{
	"op",
	"slug",
	"state",
	"department",
	"field",
	"url",
	"status",
	"status_code",
	"config",
	"path",
	"visitor",
	"submission_id",
	"source",
	"duration_ms",
	"hint",
}

const (
	maxValueLen      = 256 // Max chars for single-line context values
	maxExtraValueLen = 128 // Max chars for extra section values
)

// Format formats an error for display without I/O.
// Returns the formatted string ready for printing.
func Format(err error, opts PrintOptions) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	ae, ok := AsAppError(err)
	if !ok {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("error_code: ")
	sb.WriteString(string(ae.Code))
	sb.WriteString("\n")

	sb.WriteString(ae.Msg)
	sb.WriteString("\n")

	contextKeys := defaultContextKeys
	if opts.Verbose {
		contextKeys = verboseContextKeys
	}

	printedKeys := make(map[string]bool)
	wroteBlank := false

	for _, key := range contextKeys {
		if ae.Details == nil {
			continue
		}
		val, ok := ae.Details[key]
		if !ok || val == "" || key == "hint" {
			continue
		}
		if !wroteBlank {
			sb.WriteString("\n")
			wroteBlank = true
		}
		printedKeys[key] = true
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(sanitizeValue(val, maxValueLen))
		sb.WriteString("\n")
	}

	if opts.Verbose {
		if ae.Cause != nil {
			sb.WriteString("\ncause: ")
			sb.WriteString(sanitizeValue(ae.Cause.Error(), maxValueLen))
			sb.WriteString("\n")
		}

		var extraKeys []string
		for key, val := range ae.Details {
			if !printedKeys[key] && key != "hint" && val != "" {
				extraKeys = append(extraKeys, key)
			}
		}
		if len(extraKeys) > 0 {
			sort.Strings(extraKeys)
			sb.WriteString("\nextra:\n")
			for _, key := range extraKeys {
				sb.WriteString("  ")
				sb.WriteString(key)
				sb.WriteString(": ")
				sb.WriteString(sanitizeValue(ae.Details[key], maxExtraValueLen))
				sb.WriteString("\n")
			}
		}
	}

	if hint := ae.Details["hint"]; hint != "" {
		sb.WriteString("\nhint: ")
		sb.WriteString(hint)
		sb.WriteString("\n")
	}

	for _, try := range deriveTryLines(ae) {
		sb.WriteString("try: ")
		sb.WriteString(try)
		sb.WriteString("\n")
	}

	return sb.String()
}

// PrintWithOptions writes a formatted error to w with the given options.
func PrintWithOptions(w io.Writer, err error, opts PrintOptions) {
	if err == nil {
		return
	}
	_, _ = io.WriteString(w, Format(err, opts))
}

// sanitizeValue makes a value safe for single-line context output:
// trailing whitespace trimmed, newlines escaped, truncated to maxLen.
func sanitizeValue(val string, maxLen int) string {
	val = strings.TrimRight(val, " \t\r\n")
	val = strings.ReplaceAll(val, "\r\n", "\n")
	val = strings.ReplaceAll(val, "\n", "\\n")

	if len(val) > maxLen {
		return val[:maxLen] + "…"
	}
	return val
}

// deriveTryLines returns actionable suggestions based on error code.
func deriveTryLines(ae *AppError) []string {
	if ae == nil {
		return nil
	}

	var lines []string

	switch ae.Code {
	case EUnknownState:
		lines = append(lines, "filemyrti state list")
	case EResourceNotFound:
		if state := ae.Details["state"]; state != "" {
			lines = append(lines, fmt.Sprintf("filemyrti resource list --state %s", state))
		} else {
			lines = append(lines, "filemyrti resource list")
		}
	case ERemoteNotConfigured:
		lines = append(lines, "export FILEMYRTI_REMOTE_URL=https://api.example.com")
	case ELeadsDisabled:
		lines = append(lines, "export FILEMYRTI_LEADS_URL=https://api.example.com")
	}

	return lines
}

// FormatHint formats a hint for output.
// If hint already starts with "hint:", returns as-is.
// Otherwise prepends "hint: ".
func FormatHint(hint string) string {
	if hint == "" {
		return ""
	}
	if strings.HasPrefix(hint, "hint:") {
		return hint
	}
	return "hint: " + hint
}

// GetHint extracts the hint from an error's details, if present.
func GetHint(err error) string {
	ae, ok := AsAppError(err)
	if !ok || ae.Details == nil {
		return ""
	}
	return ae.Details["hint"]
}
