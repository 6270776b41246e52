package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/promptbridge/cli"
	"github.com/grovetools/promptbridge/version"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of promptbridge",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.GetInfo()

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return nil
		},
	}
}
