package provider

import (
	"strings"

	"github.com/NielsdaWheelz/filemyrti/internal/remote"
	"github.com/NielsdaWheelz/filemyrti/internal/states"
)

// Merge overlays the remote override fields onto a copy of static.
// Empty remote values keep the static value, and the slug is lowercased.
// Neither argument is modified.
func Merge(static *states.JurisdictionConfig, rec *remote.StateRecord) *states.JurisdictionConfig {
	out := static.Clone()
	if out == nil || rec == nil {
		return out
	}
	if rec.Name != "" {
		out.Name = rec.Name
	}
	if slug := strings.ToLower(strings.TrimSpace(rec.Slug)); slug != "" {
		out.Slug = slug
	}
	if rec.Description != "" {
		v := rec.Description
		out.Description = &v
	}
	if rec.RTIPortalURL != "" {
		v := rec.RTIPortalURL
		out.RTIPortalURL = &v
	}
	return out
}
