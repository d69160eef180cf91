// Package cobra provides the Cobra-based CLI command tree for filemyrti.
package cobra

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/filemyrti/internal/commands"
	"github.com/NielsdaWheelz/filemyrti/internal/fs"
	"github.com/NielsdaWheelz/filemyrti/internal/logging"
	"github.com/NielsdaWheelz/filemyrti/internal/tty"
	"github.com/NielsdaWheelz/filemyrti/internal/version"
)

// GlobalOpts holds global options parsed before subcommand dispatch.
type GlobalOpts struct {
	Verbose   bool
	Config    string
	LogLevel  string
	LogFormat string
}

// globalOpts stores the parsed global options for access by subcommands.
var globalOpts GlobalOpts

// GetGlobalOpts returns the parsed global options.
func GetGlobalOpts() GlobalOpts {
	return globalOpts
}

// logger is built in PersistentPreRunE from the logging flags.
var logger *slog.Logger

// NewRootCmd creates the root cobra command for filemyrti.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filemyrti",
		Short: "RTI filing site: state pages, template resolver and lead relay",
		Long: `filemyrti - RTI filing site core

Serves per-state landing content (static-first, upgraded from the backend),
resolves department names to downloadable RTI templates, relays consultation
leads and tracks the one-time promotional popup.`,
		Version:       version.FullVersion(),
		SilenceErrors: true, // We handle error printing in main.go
		SilenceUsage:  true, // We handle usage printing manually
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(cmd.ErrOrStderr(), globalOpts.LogLevel, tty.LogFormat(globalOpts.LogFormat, cmd.ErrOrStderr()), globalOpts.Verbose)
			if err != nil {
				return err
			}
			logger = l
			slog.SetDefault(l)
			return nil
		},
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&globalOpts.Verbose, "verbose", false, "show detailed error context and debug logs")
	pf.StringVar(&globalOpts.Config, "config", "", "config file (default $FILEMYRTI_CONFIG or ./filemyrti.yaml)")
	pf.StringVar(&globalOpts.LogLevel, "loglevel", logging.DefaultLevel, "set the log level (debug, info, warn, error)")
	pf.StringVarP(&globalOpts.LogFormat, "logformat", "f", "", "set the log format (text, json; default text on a terminal, json otherwise)")

	// Disable Cobra's default completion command (we register our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newServeCmd(),
		newStateCmd(),
		newResourceCmd(),
		newHostCmd(),
		newLeadCmd(),
		newPopupCmd(),
		newCompletionCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// env builds the command environment from the global flags.
func env() commands.Env {
	return commands.Env{
		FS:         fs.NewRealFS(),
		ConfigPath: globalOpts.Config,
		Logger:     logger,
	}
}

// Execute runs the root command with the given output writers.
// This is the main entry point from main.go.
func Execute(stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
