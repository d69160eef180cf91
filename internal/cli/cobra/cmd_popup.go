package cobra

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/filemyrti/internal/commands"
)

func newPopupCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "popup",
		Short: "Inspect or set the free credits popup flag",
	}
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON (stable format)")

	status := &cobra.Command{
		Use:   "status <visitor>",
		Short: "Show whether a visitor dismissed the popup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.PopupStatus(context.Background(), env(), commands.PopupOpts{Visitor: args[0], JSON: jsonOutput}, cmd.OutOrStdout())
		},
	}
	dismiss := &cobra.Command{
		Use:   "dismiss <visitor>",
		Short: "Mark the popup seen for a visitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.PopupDismiss(context.Background(), env(), commands.PopupOpts{Visitor: args[0], JSON: jsonOutput}, cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(status, dismiss)
	return cmd
}
