package cobra

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/filemyrti/internal/commands"
)

func newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Run the HTTP server.

Routes:
  GET  /healthz
  GET  /api/states              list jurisdictions
  GET  /api/states/{slug}       jurisdiction config (merged when the backend answers in time)
  GET  /api/page                page model for ?state= or the Host subdomain
  GET  /api/departments/{state} department directory with template availability
  GET  /api/resources?name=     resolve one department
  POST /api/leads               relay a consultation lead (rate-limited per IP)
  GET  /api/popup/{visitor}     popup status
  POST /api/popup/{visitor}     dismiss the popup

Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return commands.Serve(ctx, env(), commands.ServeOpts{Listen: listen}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config and FILEMYRTI_LISTEN)")

	return cmd
}
