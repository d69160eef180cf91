package cobra

import (
	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/filemyrti/internal/commands"
)

func newResourceCmd() *cobra.Command {
	var assetsBase string

	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Resolve department names to RTI templates",
	}
	cmd.PersistentFlags().StringVar(&assetsBase, "assets-base", "", "prefix download URLs with this asset root")

	var jsonResolve bool
	var stateResolve string
	resolve := &cobra.Command{
		Use:   "resolve <department>",
		Short: "Resolve one department",
		Long: `Resolve one department to its template path.
The name must match the catalog label exactly (case- and space-sensitive).
Exits with E_RESOURCE_NOT_FOUND and prints the fallback action on a miss.

Arguments:
  department    exact department label, e.g. "RTI Delhi Police"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.ResourceResolve(commands.ResourceResolveOpts{
				Name:       args[0],
				State:      stateResolve,
				AssetsBase: assetsBase,
				JSON:       jsonResolve,
			}, cmd.OutOrStdout())
		},
	}
	resolve.Flags().BoolVar(&jsonResolve, "json", false, "output as JSON (stable format)")
	resolve.Flags().StringVar(&stateResolve, "state", "", "jurisdiction for the fallback (default: classified from the name)")

	var jsonList bool
	var stateList string
	list := &cobra.Command{
		Use:   "list",
		Short: "List the department directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.ResourceList(commands.ResourceListOpts{
				State:      stateList,
				AssetsBase: assetsBase,
				JSON:       jsonList,
			}, cmd.OutOrStdout())
		},
	}
	list.Flags().BoolVar(&jsonList, "json", false, "output as JSON (stable format)")
	list.Flags().StringVar(&stateList, "state", "", "only list this jurisdiction")

	cmd.AddCommand(resolve, list)
	return cmd
}
