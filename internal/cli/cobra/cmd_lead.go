package cobra

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/filemyrti/internal/commands"
	"github.com/NielsdaWheelz/filemyrti/internal/leads"
)

func newLeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Relay consultation leads",
	}
	cmd.AddCommand(newLeadSubmitCmd())
	return cmd
}

func newLeadSubmitCmd() *cobra.Command {
	var l leads.Lead
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate and submit one lead",
		Long: `Validate and submit one lead to the Public Submission API.
Sent once; failures are not retried. Needs leads.base_url.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.LeadSubmit(context.Background(), env(), commands.LeadSubmitOpts{Lead: l, JSON: jsonOutput}, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&l.FullName, "name", "", "full name (required)")
	f.StringVar(&l.Email, "email", "", "email address (required)")
	f.StringVar(&l.Mobile, "mobile", "", "10-digit mobile number (required)")
	f.StringVar(&l.Address, "address", "", "postal address")
	f.StringVar(&l.Pincode, "pincode", "", "6-digit pincode")
	f.StringVar(&l.StateSlug, "state", "", "state slug")
	f.StringVar(&l.Source, "source", "", "source tag (default from leads.default_source)")
	f.BoolVar(&jsonOutput, "json", false, "output as JSON (stable format)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("mobile")

	return cmd
}
