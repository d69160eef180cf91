package commands

import (
	"io"

	"github.com/NielsdaWheelz/filemyrti/internal/provider"
	"github.com/NielsdaWheelz/filemyrti/internal/render"
	"github.com/NielsdaWheelz/filemyrti/internal/states"
)

// HostOpts holds options for the host command.
type HostOpts struct {
	Host string
	JSON bool
}

type hostResult struct {
	Host  string `json:"host"`
	Slug  string `json:"slug,omitempty"`
	Known bool   `json:"known"`
}

// Host prints the state slug a hostname maps to. A host that yields no
// slug is not an error.
func Host(opts HostOpts, stdout io.Writer) error {
	res := hostResult{Host: opts.Host}
	if slug, ok := provider.ResolveSlugFromHost(opts.Host); ok {
		res.Slug = slug
		res.Known = states.Default().Has(slug)
	}
	if opts.JSON {
		return render.WriteJSON(stdout, res)
	}
	return render.WriteKV(stdout, []render.KV{
		{Key: "host", Value: res.Host},
		{Key: "slug", Value: res.Slug},
		{Key: "known", Value: render.YesNo(res.Known)},
	})
}
