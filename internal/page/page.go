// Package page assembles the state landing page model: the jurisdiction
// config plus its department directory with template availability.
package page

import (
	"strings"

	"github.com/NielsdaWheelz/filemyrti/internal/provider"
	"github.com/NielsdaWheelz/filemyrti/internal/resources"
	"github.com/NielsdaWheelz/filemyrti/internal/states"
)

// Department is one clickable directory row. Exactly one of DownloadURL
// and Fallback is set.
type Department struct {
	Name        string                    `json:"name"`
	HasResource bool                      `json:"has_resource"`
	Path        string                    `json:"path,omitempty"`
	DownloadURL string                    `json:"download_url,omitempty"`
	Fallback    *resources.FallbackAction `json:"fallback,omitempty"`
}

// Section groups departments under a category.
type Section struct {
	Category    string       `json:"category"`
	Departments []Department `json:"departments"`
}

// Model is the page payload for one jurisdiction.
type Model struct {
	Slug         string                     `json:"slug"`
	Phase        provider.Phase             `json:"phase"`
	RemoteError  string                     `json:"remote_error,omitempty"`
	State        *states.JurisdictionConfig `json:"state"`
	HeroImageURL string                     `json:"hero_image_url,omitempty"`
	Featured     []Department               `json:"featured_departments"`
	Sections     []Section                  `json:"sections"`
}

// Builder renders models against a resource index and an asset root.
type Builder struct {
	Index      *resources.Index
	AssetsBase string
}

// NewBuilder returns a Builder. A nil index uses the compiled-in catalog.
func NewBuilder(idx *resources.Index, assetsBase string) *Builder {
	if idx == nil {
		idx = resources.Default()
	}
	return &Builder{Index: idx, AssetsBase: assetsBase}
}

// Resolve classifies a department click: a download when the index has a
// template, otherwise the application-flow fallback for stateSlug.
func (b *Builder) Resolve(stateSlug, name string) Department {
	d := Department{Name: name}
	if p, ok := b.Index.ResolveResourcePath(name); ok {
		d.HasResource = true
		d.Path = p
		d.DownloadURL = resources.AssetURL(b.AssetsBase, p)
		return d
	}
	fb := resources.Fallback(stateSlug, name)
	d.Fallback = &fb
	return d
}

// Build assembles the model for slug from a provider snapshot.
// A snapshot without a config yields a model with a nil State and no
// sections.
func (b *Builder) Build(slug string, snap provider.Snapshot, phase provider.Phase) Model {
	m := Model{
		Slug:     strings.ToLower(slug),
		Phase:    phase,
		State:    snap.Config,
		Featured: []Department{},
		Sections: []Section{},
	}
	if snap.Err != nil {
		m.RemoteError = snap.Err.Error()
	}
	if snap.Config == nil {
		return m
	}
	m.Slug = snap.Config.Slug
	m.HeroImageURL = b.heroURL(snap.Config.Hero.ImageRef)

	for _, name := range snap.Config.DepartmentNames {
		m.Featured = append(m.Featured, b.Resolve(m.Slug, name))
	}

	if j, ok := resources.ParseJurisdiction(m.Slug); ok {
		m.Sections = b.Sections(j)
	}
	return m
}

// Sections returns the directory for j with every row resolved.
func (b *Builder) Sections(j resources.Jurisdiction) []Section {
	out := []Section{}
	for _, sec := range b.Index.Sections(j) {
		s := Section{Category: sec.Category, Departments: make([]Department, 0, len(sec.Departments))}
		for _, d := range sec.Departments {
			s.Departments = append(s.Departments, b.Resolve(string(j), d.Name))
		}
		out = append(out, s)
	}
	return out
}

func (b *Builder) heroURL(ref string) string {
	if ref == "" || b.AssetsBase == "" {
		return ref
	}
	return resources.AssetURL(b.AssetsBase, strings.TrimPrefix(ref, "/"))
}
