package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/NielsdaWheelz/filemyrti/internal/events"
	"github.com/NielsdaWheelz/filemyrti/internal/leads"
	"github.com/NielsdaWheelz/filemyrti/internal/render"
)

// LeadSubmitOpts holds options for the lead submit command.
type LeadSubmitOpts struct {
	Lead leads.Lead
	JSON bool
}

// LeadSubmit validates and relays one lead.
func LeadSubmit(ctx context.Context, env Env, opts LeadSubmitOpts, stdout io.Writer) error {
	cfg, err := env.loadConfig()
	if err != nil {
		return err
	}
	client := leads.NewClient(leads.Config{
		BaseURL:       cfg.Leads.BaseURL,
		Timeout:       cfg.Leads.Timeout,
		DefaultSource: cfg.Leads.DefaultSource,
	}, leads.WithEvents(events.NewLog(cfg.EventsPath())), leads.WithLogger(env.logger()))

	receipt, err := client.Submit(ctx, opts.Lead)
	if err != nil {
		return err
	}
	if opts.JSON {
		return render.WriteJSON(stdout, receipt)
	}
	_, err = fmt.Fprintf(stdout, "submitted: %s (HTTP %d)\n", receipt.SubmissionID, receipt.StatusCode)
	return err
}
