package render

import (
	"fmt"
	"io"

	"github.com/NielsdaWheelz/filemyrti/internal/page"
	"github.com/NielsdaWheelz/filemyrti/internal/resources"
)

// ResourceResult is the `resource resolve` payload.
type ResourceResult struct {
	Found        bool                   `json:"found"`
	Jurisdiction resources.Jurisdiction `json:"jurisdiction"`
	Department   page.Department        `json:"department"`
}

// WriteResourceResult writes a resolve result. A miss prints the fallback
// action instead of a path.
func WriteResourceResult(w io.Writer, r ResourceResult) error {
	lines := []KV{
		{"department", r.Department.Name},
		{"jurisdiction", string(r.Jurisdiction)},
		{"found", YesNo(r.Found)},
	}
	if r.Found {
		lines = append(lines, KV{"path", r.Department.Path}, KV{"url", r.Department.DownloadURL})
	} else if r.Department.Fallback != nil {
		lines = append(lines, KV{"fallback", r.Department.Fallback.URL})
	}
	return WriteKV(w, lines)
}

// WriteSections writes the department directory, one table per category.
func WriteSections(w io.Writer, sections []page.Section) error {
	if len(sections) == 0 {
		_, err := fmt.Fprintln(w, "no departments listed")
		return err
	}
	for i, sec := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", sec.Category); err != nil {
			return err
		}
		rows := make([][]string, 0, len(sec.Departments))
		for _, d := range sec.Departments {
			target := d.Path
			if !d.HasResource && d.Fallback != nil {
				target = d.Fallback.URL
			}
			rows = append(rows, []string{"  " + d.Name, YesNo(d.HasResource), target})
		}
		if err := WriteTable(w, []string{"  DEPARTMENT", "TEMPLATE", "TARGET"}, rows); err != nil {
			return err
		}
	}
	return nil
}
