// Package resources maps department display names to downloadable RTI
// template paths and classifies department names by jurisdiction.
//
// Lookups are exact: names are case- and whitespace-sensitive and must match
// the label the catalog was built with. A miss is an ordinary outcome (many
// departments have no template yet) and is reported as a false return,
// never as an error or panic.
package resources

import (
	"fmt"
	"net/url"
	"strings"
)

// Jurisdiction identifies the state a department belongs to.
type Jurisdiction string

const (
	Telangana Jurisdiction = "telangana"
	Rajasthan Jurisdiction = "rajasthan"
	Delhi     Jurisdiction = "delhi"

	// DefaultJurisdiction is used when a name carries no known marker.
	DefaultJurisdiction = Delhi
)

// Jurisdictions returns the known jurisdictions in catalog order.
func Jurisdictions() []Jurisdiction {
	return []Jurisdiction{Delhi, Telangana, Rajasthan}
}

// ParseJurisdiction converts a slug to a Jurisdiction (case-insensitive).
func ParseJurisdiction(s string) (Jurisdiction, bool) {
	switch Jurisdiction(strings.ToLower(s)) {
	case Telangana:
		return Telangana, true
	case Rajasthan:
		return Rajasthan, true
	case Delhi:
		return Delhi, true
	}
	return "", false
}

type catalogItem struct {
	Name string
	File string
}

type catalogSection struct {
	Jurisdiction Jurisdiction
	Category     string
	Folder       string
	Items        []catalogItem
}

// Entry is a single resolvable template.
type Entry struct {
	Department   string       `json:"department"`
	Path         string       `json:"path"`
	Category     string       `json:"category"`
	Jurisdiction Jurisdiction `json:"jurisdiction"`
}

// Department is a directory listing row.
type Department struct {
	Name        string `json:"name"`
	HasResource bool   `json:"has_resource"`
	Path        string `json:"path,omitempty"`
}

// Section groups directory rows under a display category.
type Section struct {
	Jurisdiction Jurisdiction `json:"jurisdiction"`
	Category     string       `json:"category"`
	Departments  []Department `json:"departments"`
}

// Index is the immutable department→template lookup.
type Index struct {
	byName   map[string]Entry
	entries  []Entry
	sections []catalogSection
}

// newIndex builds an index from the catalog sections.
// Returns an error when two templates share a department name.
func newIndex(sections []catalogSection) (*Index, error) {
	idx := &Index{
		byName:   make(map[string]Entry),
		sections: sections,
	}
	for _, sec := range sections {
		for _, item := range sec.Items {
			if item.File == "" {
				continue
			}
			if prev, dup := idx.byName[item.Name]; dup {
				return nil, fmt.Errorf("duplicate department %q (categories %q and %q)", item.Name, prev.Category, sec.Category)
			}
			e := Entry{
				Department:   item.Name,
				Path:         sec.Folder + "/" + item.File,
				Category:     sec.Category,
				Jurisdiction: sec.Jurisdiction,
			}
			idx.byName[item.Name] = e
			idx.entries = append(idx.entries, e)
		}
	}
	return idx, nil
}

var defaultIndex = mustIndex(catalog)

func mustIndex(sections []catalogSection) *Index {
	idx, err := newIndex(sections)
	if err != nil {
		panic("resources: " + err.Error())
	}
	return idx
}

// Default returns the compiled-in index.
func Default() *Index {
	return defaultIndex
}

// HasResource reports whether name is an exact key in the index.
func (idx *Index) HasResource(name string) bool {
	_, ok := idx.byName[name]
	return ok
}

// ResolveResourcePath returns the template path for name, or ("", false).
func (idx *Index) ResolveResourcePath(name string) (string, bool) {
	e, ok := idx.byName[name]
	if !ok {
		return "", false
	}
	return e.Path, true
}

// Lookup returns the full entry for name.
func (idx *Index) Lookup(name string) (Entry, bool) {
	e, ok := idx.byName[name]
	return e, ok
}

// All returns every resolvable template in catalog order.
func (idx *Index) All() []Entry {
	return idx.Entries("")
}

// Entries returns every resolvable template, optionally filtered by
// jurisdiction (empty means all).
func (idx *Index) Entries(j Jurisdiction) []Entry {
	out := make([]Entry, 0, len(idx.entries))
	for _, e := range idx.entries {
		if j == "" || e.Jurisdiction == j {
			out = append(out, e)
		}
	}
	return out
}

// Sections returns the directory listing for j in display order.
func (idx *Index) Sections(j Jurisdiction) []Section {
	var out []Section
	for _, sec := range idx.sections {
		if sec.Jurisdiction != j {
			continue
		}
		s := Section{Jurisdiction: sec.Jurisdiction, Category: sec.Category}
		for _, item := range sec.Items {
			d := Department{Name: item.Name}
			if p, ok := idx.ResolveResourcePath(item.Name); ok {
				d.HasResource = true
				d.Path = p
			}
			s.Departments = append(s.Departments, d)
		}
		out = append(out, s)
	}
	return out
}

// ClassifyJurisdiction guesses the jurisdiction from markers in name.
//
// Case-insensitive substring match, Telangana checked before Rajasthan,
// falling back to DefaultJurisdiction. A name that mentions another
// state's name is misclassified; the catalog is curated so this holds.
func ClassifyJurisdiction(name string) Jurisdiction {
	lower := strings.ToLower(name)
	if strings.Contains(lower, string(Telangana)) {
		return Telangana
	}
	if strings.Contains(lower, string(Rajasthan)) {
		return Rajasthan
	}
	return DefaultJurisdiction
}

// HasResource reports whether the compiled-in index has a template for name.
func HasResource(name string) bool {
	return defaultIndex.HasResource(name)
}

// ResolveResourcePath resolves name against the compiled-in index.
func ResolveResourcePath(name string) (string, bool) {
	return defaultIndex.ResolveResourcePath(name)
}

// AssetURL joins a public asset root with a template path, escaping each
// path segment. With an empty base the escaped relative path is returned.
// No request is made and existence is not checked.
func AssetURL(base, resourcePath string) string {
	segments := strings.Split(resourcePath, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	escaped := strings.Join(segments, "/")
	if base == "" {
		return escaped
	}
	return strings.TrimRight(base, "/") + "/" + escaped
}

// FallbackAction is where a visitor is sent when a department has no template.
type FallbackAction struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

// Fallback returns the application-flow redirect for a department without
// a template.
func Fallback(stateSlug, department string) FallbackAction {
	q := url.Values{}
	if stateSlug != "" {
		q.Set("state", stateSlug)
	}
	if department != "" {
		q.Set("department", department)
	}
	target := "/apply"
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}
	return FallbackAction{Kind: "apply", URL: target}
}
