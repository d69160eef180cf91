package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/NielsdaWheelz/filemyrti/internal/states"
)

// StateRow is one line of `state list`.
type StateRow struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Commission  string `json:"commission,omitempty"`
	Departments int    `json:"departments"`
}

// StateRows summarizes configs for listing.
func StateRows(cfgs []*states.JurisdictionConfig) []StateRow {
	rows := make([]StateRow, 0, len(cfgs))
	for _, c := range cfgs {
		rows = append(rows, StateRow{
			Slug:        c.Slug,
			Name:        c.Name,
			Commission:  deref(c.CommissionName),
			Departments: len(c.DepartmentNames),
		})
	}
	return rows
}

// WriteStateList writes the `state list` table.
func WriteStateList(w io.Writer, rows []StateRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no states configured")
		return err
	}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		commission := r.Commission
		if commission == "" {
			commission = ValueDash
		}
		cells = append(cells, []string{r.Slug, r.Name, strconv.Itoa(r.Departments), commission})
	}
	return WriteTable(w, []string{"SLUG", "NAME", "DEPARTMENTS", "COMMISSION"}, cells)
}

// StateShowData is the input to the human `state show` output.
type StateShowData struct {
	Config      *states.JurisdictionConfig
	Phase       string
	RemoteError string
}

// WriteStateShow writes `state show` as key/value lines followed by the
// featured departments and the filing process.
func WriteStateShow(w io.Writer, data StateShowData) error {
	c := data.Config
	if err := WriteKV(w, []KV{
		{"slug", c.Slug},
		{"name", c.Name},
		{"phase", data.Phase},
		{"theme", c.DesignTheme},
		{"languages", strings.Join(c.SupportedLanguages, ", ")},
		{"hero", c.Hero.Title},
		{"fee", deref(c.FeeAmount)},
		{"commission", deref(c.CommissionName)},
		{"rti_portal_url", deref(c.RTIPortalURL)},
		{"description", TruncateForDisplay(deref(c.Description), 120)},
		{"remote_error", data.RemoteError},
	}); err != nil {
		return err
	}

	if len(c.DepartmentNames) > 0 {
		if _, err := fmt.Fprintf(w, "\ndepartments (%d):\n", len(c.DepartmentNames)); err != nil {
			return err
		}
		for _, d := range c.DepartmentNames {
			if _, err := fmt.Fprintf(w, "  - %s\n", d); err != nil {
				return err
			}
		}
	}
	if len(c.ProcessSteps) > 0 {
		if _, err := fmt.Fprintln(w, "\nprocess:"); err != nil {
			return err
		}
		for _, s := range c.ProcessSteps {
			if _, err := fmt.Fprintf(w, "  %d. %s\n", s.StepNumber, s.Title); err != nil {
				return err
			}
		}
	}
	return nil
}
