package cobra

import (
	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/filemyrti/internal/commands"
)

func newHostCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "host <hostname>",
		Short: "Show the state slug a hostname maps to",
		Long: `Show the state slug a hostname maps to.
The slug is the first label of a host with at least three labels,
e.g. rajasthan.filemyrti.com -> rajasthan.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Host(commands.HostOpts{Host: args[0], JSON: jsonOutput}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON (stable format)")

	return cmd
}
