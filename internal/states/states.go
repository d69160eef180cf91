// Package states holds the compiled-in jurisdiction table.
//
// The table is parsed once from the embedded states.yaml and is read-only
// afterwards. Lookups hand out deep copies, so callers may modify what
// they receive without affecting other readers.
package states

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
)

//go:embed states.yaml
var embeddedStates []byte

// Hero is the landing banner content for a jurisdiction.
type Hero struct {
	Title             string `yaml:"title" json:"title"`
	Subtitle          string `yaml:"subtitle" json:"subtitle"`
	ImageRef          string `yaml:"image" json:"image_ref"`
	CallToActionLabel string `yaml:"cta" json:"call_to_action_label"`
}

// FAQ is a single question/answer pair.
type FAQ struct {
	Question string `yaml:"q" json:"question"`
	Answer   string `yaml:"a" json:"answer"`
}

// ProcessStep is one step of the filing walkthrough.
type ProcessStep struct {
	StepNumber  int    `yaml:"step" json:"step_number"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// JurisdictionConfig is the marketing content for one state or territory.
// Optional scalars are nil when the static table has no value for them.
type JurisdictionConfig struct {
	Name               string        `yaml:"name" json:"name"`
	Slug               string        `yaml:"slug" json:"slug"`
	DesignTheme        string        `yaml:"design_theme" json:"design_theme,omitempty"`
	SupportedLanguages []string      `yaml:"languages" json:"supported_languages"`
	Hero               Hero          `yaml:"hero" json:"hero"`
	DepartmentNames    []string      `yaml:"departments" json:"department_names"`
	HighlightBullets   []string      `yaml:"highlights" json:"highlight_bullets"`
	FAQs               []FAQ         `yaml:"faqs" json:"faqs"`
	ProcessSteps       []ProcessStep `yaml:"process" json:"process_steps"`
	FeeAmount          *string       `yaml:"fee" json:"fee_amount"`
	CommissionName     *string       `yaml:"commission" json:"commission_name"`
	RTIPortalURL       *string       `yaml:"rti_portal_url" json:"rti_portal_url"`
	Description        *string       `yaml:"description" json:"description"`
}

// Clone returns a deep copy of c.
func (c *JurisdictionConfig) Clone() *JurisdictionConfig {
	if c == nil {
		return nil
	}
	cp := *c
	cp.SupportedLanguages = cloneStrings(c.SupportedLanguages)
	cp.DepartmentNames = cloneStrings(c.DepartmentNames)
	cp.HighlightBullets = cloneStrings(c.HighlightBullets)
	if c.FAQs != nil {
		cp.FAQs = append([]FAQ(nil), c.FAQs...)
	}
	if c.ProcessSteps != nil {
		cp.ProcessSteps = append([]ProcessStep(nil), c.ProcessSteps...)
	}
	cp.FeeAmount = cloneStringPtr(c.FeeAmount)
	cp.CommissionName = cloneStringPtr(c.CommissionName)
	cp.RTIPortalURL = cloneStringPtr(c.RTIPortalURL)
	cp.Description = cloneStringPtr(c.Description)
	return &cp
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Table is an immutable slug-indexed set of jurisdiction configs.
type Table struct {
	bySlug map[string]*JurisdictionConfig
	order  []string
}

type tableFile struct {
	States []JurisdictionConfig `yaml:"states"`
}

// Parse decodes and validates a states document.
// Unknown keys, empty names, non-lowercase slugs and duplicate slugs are
// rejected with E_INVALID_CONFIG.
func Parse(data []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc tableFile
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.EInvalidConfig, "invalid states document: "+err.Error(), err)
	}

	t := &Table{bySlug: make(map[string]*JurisdictionConfig, len(doc.States))}
	for i := range doc.States {
		cfg := doc.States[i]
		if err := validate(cfg, i); err != nil {
			return nil, err
		}
		if _, dup := t.bySlug[cfg.Slug]; dup {
			return nil, errors.NewWithDetails(errors.EInvalidConfig, "duplicate state slug", map[string]string{
				"slug": cfg.Slug,
			})
		}
		t.bySlug[cfg.Slug] = &cfg
		t.order = append(t.order, cfg.Slug)
	}
	return t, nil
}

func validate(cfg JurisdictionConfig, idx int) error {
	field := fmt.Sprintf("states[%d]", idx)
	if strings.TrimSpace(cfg.Name) == "" {
		return errors.NewWithDetails(errors.EInvalidConfig, "state name is required", map[string]string{"field": field + ".name"})
	}
	if cfg.Slug == "" {
		return errors.NewWithDetails(errors.EInvalidConfig, "state slug is required", map[string]string{"field": field + ".slug"})
	}
	if cfg.Slug != strings.ToLower(cfg.Slug) || strings.ContainsAny(cfg.Slug, " .\t/") {
		return errors.NewWithDetails(errors.EInvalidConfig, "state slug must be a lowercase label", map[string]string{
			"field": field + ".slug",
			"slug":  cfg.Slug,
		})
	}
	for i, step := range cfg.ProcessSteps {
		if step.StepNumber != i+1 {
			return errors.NewWithDetails(errors.EInvalidConfig, "process steps must be numbered from 1 in order", map[string]string{
				"field": fmt.Sprintf("%s.process[%d].step", field, i),
				"slug":  cfg.Slug,
			})
		}
	}
	return nil
}

// Get returns a copy of the config for slug. The slug is lowercased first.
func (t *Table) Get(slug string) (*JurisdictionConfig, bool) {
	cfg, ok := t.bySlug[strings.ToLower(slug)]
	if !ok {
		return nil, false
	}
	return cfg.Clone(), true
}

// Has reports whether slug (lowercased) is in the table.
func (t *Table) Has(slug string) bool {
	_, ok := t.bySlug[strings.ToLower(slug)]
	return ok
}

// Slugs returns the slugs in document order.
func (t *Table) Slugs() []string {
	return cloneStrings(t.order)
}

// All returns copies of every config in document order.
func (t *Table) All() []*JurisdictionConfig {
	out := make([]*JurisdictionConfig, 0, len(t.order))
	for _, slug := range t.order {
		out = append(out, t.bySlug[slug].Clone())
	}
	return out
}

var defaultTable = mustParse(embeddedStates)

func mustParse(data []byte) *Table {
	t, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("states: embedded table is invalid: %v", err))
	}
	return t
}

// Default returns the compiled-in table.
func Default() *Table {
	return defaultTable
}

// GetStateBySlug looks up slug in the compiled-in table.
func GetStateBySlug(slug string) (*JurisdictionConfig, bool) {
	return defaultTable.Get(slug)
}

// AllSlugs returns every slug in the compiled-in table.
func AllSlugs() []string {
	return defaultTable.Slugs()
}
