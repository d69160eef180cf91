// Package render provides output formatting for filemyrti commands.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Placeholders for empty values in human output.
const (
	ValueNone = "none"
	ValueDash = "-"
)

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteTable writes rows under header as whitespace-aligned columns. The
// last column is never padded.
func WriteTable(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if _, err := fmt.Fprintln(w, formatRow(header, widths)); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, formatRow(row, widths)); err != nil {
			return err
		}
	}
	return nil
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 {
			b.WriteString(cell)
			break
		}
		fmt.Fprintf(&b, "%-*s  ", widths[i], cell)
	}
	return b.String()
}

// KV is one key/value line of human output.
type KV struct {
	Key   string
	Value string
}

// WriteKV writes "key: value" lines in order. Empty values print as none.
func WriteKV(w io.Writer, lines []KV) error {
	for _, line := range lines {
		v := line.Value
		if v == "" {
			v = ValueNone
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", line.Key, v); err != nil {
			return err
		}
	}
	return nil
}

// TruncateForDisplay shortens s to maxLen runes with a trailing ellipsis.
func TruncateForDisplay(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// YesNo formats a bool for human output.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
