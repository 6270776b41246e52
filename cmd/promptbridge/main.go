package main

import (
	"os"

	"github.com/grovetools/promptbridge/cli"
	"github.com/grovetools/promptbridge/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"promptbridge",
		"Bridge a shell's prompt hooks to an external prompt renderer",
	)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewInitCmd())
	rootCmd.AddCommand(cmd.NewPromptCmd())
	rootCmd.AddCommand(cmd.NewInstallCmd())
	rootCmd.AddCommand(cmd.NewDoctorCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
