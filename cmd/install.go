package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovetools/promptbridge/cli"
	"github.com/grovetools/promptbridge/errors"
	"github.com/grovetools/promptbridge/shell"
)

// NewInstallCmd creates the install command, which wires the integration
// script into the shell's startup file.
func NewInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <shell>",
		Short: "Add the integration loader to your shell startup file",
		Long: `Appends a loader line to the shell's startup file so every new shell
session sources the promptbridge integration script. The edit is idempotent:
running install twice leaves a single loader line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := cli.NewErrorHandler(cli.GetOptions(cmd).Verbose)
			if err := runInstall(cmd, args[0]); err != nil {
				return handler.Handle(err)
			}
			return nil
		},
	}

	return cmd
}

func runInstall(cmd *cobra.Command, shellTag string) error {
	if !shell.Supported(shellTag) {
		return errors.ShellUnsupported(shellTag)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "could not determine home directory")
	}

	rcPath := filepath.Join(home, ".xonshrc")
	return installLoaderLine(cmd, rcPath)
}

func installLoaderLine(cmd *cobra.Command, rcPath string) error {
	executable, err := os.Executable()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "could not resolve own executable path")
	}

	loader := fmt.Sprintf("execx($(%s init xonsh))  # promptbridge", executable)

	content := ""
	if data, err := os.ReadFile(rcPath); err == nil {
		content = string(data)
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, errors.ErrCodeInternal, fmt.Sprintf("could not read %s", rcPath))
	}

	if strings.Contains(content, "# promptbridge") {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ promptbridge loader already present in %s\n", rcPath)
		return nil
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += loader + "\n"

	if err := os.WriteFile(rcPath, []byte(content), 0o644); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, fmt.Sprintf("could not write %s", rcPath))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Added promptbridge loader to %s. Restart your shell to see the prompt.\n", rcPath)
	return nil
}
