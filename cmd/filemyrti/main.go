// Command filemyrti runs the RTI filing site core.
package main

import (
	"os"

	"github.com/NielsdaWheelz/filemyrti/internal/cli/cobra"
	"github.com/NielsdaWheelz/filemyrti/internal/errors"
)

func main() {
	err := cobra.Execute(os.Stdout, os.Stderr)
	if err != nil {
		// Use verbose mode if --verbose global flag was set
		opts := errors.PrintOptions{
			Verbose: cobra.GetGlobalOpts().Verbose,
		}
		errors.PrintWithOptions(os.Stderr, err, opts)
		os.Exit(errors.ExitCode(err))
	}
}
