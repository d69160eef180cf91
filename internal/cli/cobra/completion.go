package cobra

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/fs"
)

func newCompletionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts.
By default, prints the script to stdout.
Use --output to write directly to a file.

Arguments:
  shell    target shell: bash or zsh

Installation:

  bash (with bash-completion package):
    filemyrti completion --output ~/.local/share/bash-completion/completions/filemyrti bash

  zsh (with fpath):
    filemyrti completion zsh > ~/.zsh/completions/_filemyrti
    # ensure ~/.zsh/completions is in fpath before compinit

After installation, restart your shell.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return genCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
			}

			var buf bytes.Buffer
			if err := genCompletion(cmd.Root(), args[0], &buf); err != nil {
				return err
			}
			if err := fs.WriteFileAtomic(fs.NewRealFS(), output, buf.Bytes(), 0o644); err != nil {
				return errors.Wrap(errors.EInternal, fmt.Sprintf("failed to write %s", output), err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "write completion script to file instead of stdout")

	return cmd
}

func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	var err error
	switch shell {
	case "bash":
		err = root.GenBashCompletion(w)
	case "zsh":
		err = root.GenZshCompletion(w)
	default:
		return errors.New(errors.EUsage, fmt.Sprintf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to generate completion script", err)
	}
	return nil
}
