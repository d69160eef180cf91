package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/provider"
	"github.com/NielsdaWheelz/filemyrti/internal/render"
	"github.com/NielsdaWheelz/filemyrti/internal/states"
)

// StateListOpts holds options for the state list command.
type StateListOpts struct {
	JSON bool
}

// StateList prints the jurisdictions in the static table.
func StateList(opts StateListOpts, stdout io.Writer) error {
	rows := render.StateRows(states.Default().All())
	if opts.JSON {
		return render.WriteJSON(stdout, rows)
	}
	return render.WriteStateList(stdout, rows)
}

// StateShowOpts holds options for the state show command.
type StateShowOpts struct {
	Slug string
	// Remote merges the backend record before printing.
	Remote bool
	JSON   bool
}

type stateShowJSON struct {
	Slug        string                     `json:"slug"`
	Phase       provider.Phase             `json:"phase"`
	Config      *states.JurisdictionConfig `json:"config"`
	RemoteError string                     `json:"remote_error,omitempty"`
}

// StateShow prints one jurisdiction config. With Remote it waits up to
// remote.await for the merged view (await 0 prints the static view at once); a failed fetch still prints the
// static config and reports the failure on stderr.
func StateShow(ctx context.Context, env Env, opts StateShowOpts, stdout, stderr io.Writer) error {
	slug := strings.ToLower(strings.TrimSpace(opts.Slug))
	if slug == "" {
		return errors.New(errors.EUsage, "state slug is required")
	}
	if !states.Default().Has(slug) {
		return errors.NewWithDetails(errors.EUnknownState, "unknown state: "+opts.Slug, map[string]string{
			"slug": opts.Slug,
			"hint": "use one of: " + strings.Join(states.AllSlugs(), ", "),
		})
	}

	snap, phase := provider.Snapshot{}, provider.PhaseStaticOnly
	if opts.Remote {
		cfg, err := env.loadConfig()
		if err != nil {
			return err
		}
		f := fetcher(cfg)
		if f == nil {
			return errors.NewWithDetails(errors.ERemoteNotConfigured, "--remote needs remote.base_url", map[string]string{
				"hint": "set remote.base_url in filemyrti.yaml or FILEMYRTI_REMOTE_URL",
			})
		}
		p := provider.New(nil, f,
			provider.WithScheduler(provider.NewIdleScheduler(cfg.Remote.IdleBudget)),
			provider.WithLogger(env.logger()),
		)
		inst := p.Use(slug, provider.WithContext(ctx))
		if cfg.Remote.Await > 0 {
			waitCtx, cancel := context.WithTimeout(ctx, cfg.Remote.Await)
			snap = inst.Wait(waitCtx)
			cancel()
		} else {
			snap = inst.Snapshot()
		}
		phase = inst.Phase()
		inst.Close()
	} else {
		inst := provider.New(nil, nil).Use(slug)
		snap = inst.Snapshot()
		inst.Close()
	}

	var remoteErr string
	if snap.Err != nil {
		remoteErr = snap.Err.Error()
		_, _ = fmt.Fprintf(stderr, "warning: %s; showing static config\n", remoteErr)
	}

	if opts.JSON {
		return render.WriteJSON(stdout, stateShowJSON{
			Slug:        slug,
			Phase:       phase,
			Config:      snap.Config,
			RemoteError: remoteErr,
		})
	}
	return render.WriteStateShow(stdout, render.StateShowData{
		Config:      snap.Config,
		Phase:       string(phase),
		RemoteError: remoteErr,
	})
}
