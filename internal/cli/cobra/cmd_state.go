package cobra

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/filemyrti/internal/commands"
)

func newStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect jurisdiction configs",
	}
	cmd.AddCommand(newStateListCmd(), newStateShowCmd())
	return cmd
}

func newStateListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jurisdictions in the static table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.StateList(commands.StateListOpts{JSON: jsonOutput}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON (stable format)")

	return cmd
}

func newStateShowCmd() *cobra.Command {
	var jsonOutput bool
	var remote bool

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show a jurisdiction config",
		Long: `Show a jurisdiction config.
Lookup is case-insensitive.

With --remote the backend record is fetched once and merged over the static
config. If the fetch fails or exceeds remote.await, the static config is
printed and a warning goes to stderr.

Arguments:
  slug    delhi, telangana or rajasthan`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.StateShowOpts{
				Slug:   args[0],
				Remote: remote,
				JSON:   jsonOutput,
			}
			return commands.StateShow(context.Background(), env(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON (stable format)")
	cmd.Flags().BoolVar(&remote, "remote", false, "merge the backend record (needs remote.base_url)")

	return cmd
}
