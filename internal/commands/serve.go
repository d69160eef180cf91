package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/NielsdaWheelz/filemyrti/internal/popup"
	"github.com/NielsdaWheelz/filemyrti/internal/server"
)

// ServeOpts holds options for the serve command.
type ServeOpts struct {
	// Listen overrides the configured listen address when set.
	Listen string
}

// Serve runs the HTTP server until ctx is cancelled.
func Serve(ctx context.Context, env Env, opts ServeOpts, stdout io.Writer) error {
	cfg, err := env.loadConfig()
	if err != nil {
		return err
	}
	if opts.Listen != "" {
		cfg.Listen = opts.Listen
	}
	logger := env.logger()

	store, err := popup.Open(cfg, env.fs())
	if err != nil {
		return err
	}
	if rs, ok := store.(*popup.RedisStore); ok {
		defer rs.Close()
		if err := rs.Ping(ctx); err != nil {
			logger.Warn("popup store unreachable; popup reads will fail closed", "backend", rs.Backend(), "err", err)
		}
	}

	if cfg.Remote.BaseURL == "" {
		logger.Info("remote.base_url not set; serving static state configs only")
	}
	if cfg.Leads.BaseURL == "" {
		logger.Info("leads.base_url not set; lead submissions are disabled")
	}

	srv := server.NewFromConfig(cfg, fetcher(cfg), store, logger)
	_, _ = fmt.Fprintf(stdout, "filemyrti serving on %s\n", cfg.Listen)
	return srv.Run(ctx)
}
