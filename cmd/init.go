package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/grovetools/promptbridge/cli"
	"github.com/grovetools/promptbridge/session"
	"github.com/grovetools/promptbridge/shell"
)

// NewInitCmd creates the init command, which prints the integration script a
// shell sources at startup.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <shell>",
		Short: "Print the shell integration script",
		Long: `Prints the integration script for the given shell. Source it from the
shell's startup file, e.g. in ~/.xonshrc:

  execx($(promptbridge init xonsh))

The script generates a fresh session identifier, captures the shell version,
and assigns the prompt hooks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args[0])
		},
	}

	return cmd
}

func runInit(cmd *cobra.Command, shellTag string) error {
	log := cli.GetLogger(cmd)
	handler := cli.NewErrorHandler(cli.GetOptions(cmd).Verbose)

	cfg, configPath, err := cli.LoadConfig(cmd)
	if err != nil {
		return handler.Handle(err)
	}

	executable, err := os.Executable()
	if err != nil {
		// Sourcing the output must never break shell startup; emit a notice
		// line the shell can run instead of a script.
		fmt.Fprintln(cmd.OutOrStdout(), shell.NoExeScript(shellTag))
		return nil
	}

	sessionID := session.NewID()

	var features shell.Features
	if cfg.Shell.RightPrompt {
		features = append(features, shell.RPrompt)
	}

	script, err := shell.Init(shellTag, shell.InitOptions{
		Executable: executable,
		ConfigPath: configPath,
		SessionID:  sessionID,
		Features:   features,
	})
	if err != nil {
		return handler.Handle(err)
	}

	record := session.Record{
		ID:           sessionID,
		ShellTag:     shellTag,
		ShellVersion: session.ShellVersion(shellTag),
		Renderer:     cfg.Renderer.Path,
		Theme:        cfg.Renderer.Theme,
		StartedAt:    time.Now().UTC(),
	}
	if err := record.Save(); err != nil {
		// The prompt still works without the diagnostic record.
		log.WithError(err).Debug("could not save session record")
	}

	fmt.Fprintln(cmd.OutOrStdout(), script)
	return nil
}
