package commands

import (
	"io"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/page"
	"github.com/NielsdaWheelz/filemyrti/internal/render"
	"github.com/NielsdaWheelz/filemyrti/internal/resources"
)

// ResourceResolveOpts holds options for the resource resolve command.
type ResourceResolveOpts struct {
	// Name is the exact department label.
	Name string
	// State overrides the jurisdiction classified from Name.
	State string
	// AssetsBase prefixes download URLs.
	AssetsBase string
	JSON       bool
}

func parseState(raw string) (resources.Jurisdiction, error) {
	j, ok := resources.ParseJurisdiction(raw)
	if !ok {
		return "", errors.NewWithDetails(errors.EUnknownState, "unknown state: "+raw, map[string]string{
			"state": raw,
			"hint":  "use one of: delhi, telangana, rajasthan",
		})
	}
	return j, nil
}

// ResourceResolve looks a department up and prints its template path.
// A miss prints the fallback action and returns E_RESOURCE_NOT_FOUND.
func ResourceResolve(opts ResourceResolveOpts, stdout io.Writer) error {
	if opts.Name == "" {
		return errors.New(errors.EUsage, "department name is required")
	}
	j := resources.ClassifyJurisdiction(opts.Name)
	if opts.State != "" {
		var err error
		if j, err = parseState(opts.State); err != nil {
			return err
		}
	}

	d := page.NewBuilder(nil, opts.AssetsBase).Resolve(string(j), opts.Name)
	result := render.ResourceResult{Found: d.HasResource, Jurisdiction: j, Department: d}

	var err error
	if opts.JSON {
		err = render.WriteJSON(stdout, result)
	} else {
		err = render.WriteResourceResult(stdout, result)
	}
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to write output", err)
	}

	if !d.HasResource {
		details := map[string]string{"department": opts.Name, "state": string(j)}
		if d.Fallback != nil {
			details["hint"] = "no template yet; send the visitor to " + d.Fallback.URL
		}
		return errors.NewWithDetails(errors.EResourceNotFound, "no template for department", details)
	}
	return nil
}

// ResourceListOpts holds options for the resource list command.
type ResourceListOpts struct {
	// State limits the listing to one jurisdiction; empty lists all.
	State      string
	AssetsBase string
	JSON       bool
}

// ResourceList prints the department directory with template availability.
func ResourceList(opts ResourceListOpts, stdout io.Writer) error {
	js := resources.Jurisdictions()
	if opts.State != "" {
		j, err := parseState(opts.State)
		if err != nil {
			return err
		}
		js = []resources.Jurisdiction{j}
	}

	b := page.NewBuilder(nil, opts.AssetsBase)
	if opts.JSON {
		out := make(map[resources.Jurisdiction][]page.Section, len(js))
		for _, j := range js {
			out[j] = b.Sections(j)
		}
		return render.WriteJSON(stdout, out)
	}

	for i, j := range js {
		if i > 0 {
			if _, err := io.WriteString(stdout, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(stdout, "# "+string(j)+"\n"); err != nil {
			return err
		}
		if err := render.WriteSections(stdout, b.Sections(j)); err != nil {
			return err
		}
	}
	return nil
}
