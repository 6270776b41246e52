package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/promptbridge/config"
	"github.com/grovetools/promptbridge/logging"
)

// CommandOptions holds common options for promptbridge commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with standard promptbridge flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to promptbridge.toml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger creates a logger based on command flags
func GetLogger(cmd *cobra.Command) *logrus.Logger {
	entry := logging.NewLogger("cli")
	logger := entry.Logger

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// LoadConfig resolves and loads the configuration for a command and applies
// its logging section.
func LoadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	configFile, _ := cmd.Flags().GetString("config")

	path, err := config.Resolve(configFile)
	if err != nil {
		return nil, "", err
	}

	var cfg *config.Config
	if path == "" {
		cfg = config.Default()
	} else {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, "", err
		}
	}

	logging.Configure(cfg.Logging)
	return cfg, path, nil
}
