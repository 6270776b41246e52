package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/promptbridge/bridge"
	"github.com/grovetools/promptbridge/cli"
	"github.com/grovetools/promptbridge/config"
	"github.com/grovetools/promptbridge/history"
	"github.com/grovetools/promptbridge/session"
)

// SessionIDEnvVar lets the integration script hand the session identifier
// down through the environment instead of a flag.
const SessionIDEnvVar = "PROMPTBRIDGE_SESSION_ID"

// NewPromptCmd creates the prompt command, the per-draw entry point the
// integration script invokes.
func NewPromptCmd() *cobra.Command {
	var (
		status        int
		executionTime int64
		shellVersion  string
		sessionID     string
	)

	cmd := &cobra.Command{
		Use:    "prompt <primary|right>",
		Short:  "Render a prompt segment (called by the integration script)",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, promptArgs{
				mode:          args[0],
				status:        status,
				executionTime: executionTime,
				shellVersion:  shellVersion,
				sessionID:     sessionID,
				explicit:      cmd.Flags().Changed("status") || cmd.Flags().Changed("execution-time"),
			})
		},
	}

	cmd.Flags().IntVar(&status, "status", 0, "Last command's exit status")
	cmd.Flags().Int64Var(&executionTime, "execution-time", 0, "Last command's duration in milliseconds")
	cmd.Flags().StringVar(&shellVersion, "shell-version", "", "Host shell version string")
	cmd.Flags().StringVar(&sessionID, "session-id", "", "Session identifier")

	return cmd
}

type promptArgs struct {
	mode          string
	status        int
	executionTime int64
	shellVersion  string
	sessionID     string
	explicit      bool
}

func runPrompt(cmd *cobra.Command, args promptArgs) error {
	log := cli.GetLogger(cmd)

	cfg, _, err := cli.LoadConfig(cmd)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		// An unconfigured bridge degrades to an empty prompt segment; the
		// shell keeps drawing prompts either way.
		log.WithError(err).Error("prompt render skipped")
		if cli.GetOptions(cmd).Verbose {
			cli.NewErrorHandler(true).Handle(err)
		}
		return nil
	}

	b, err := buildBridge(cfg, args)
	if err != nil {
		log.WithError(err).Error("bridge construction failed")
		return nil
	}

	var out string
	switch args.mode {
	case string(bridge.ModePrimary):
		out, err = b.RenderPrimary(cmd.Context())
	case string(bridge.ModeRight):
		out, err = b.RenderRight(cmd.Context())
	default:
		return fmt.Errorf("unknown prompt mode: %s (expected 'primary' or 'right')", args.mode)
	}
	if err != nil {
		log.WithError(err).Error("prompt render failed")
		if cli.GetOptions(cmd).Verbose {
			cli.NewErrorHandler(true).Handle(err)
		}
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func buildBridge(cfg *config.Config, args promptArgs) (*bridge.Bridge, error) {
	provider := historyProvider(cfg, args)

	sessionID := args.sessionID
	if sessionID == "" {
		sessionID = os.Getenv(SessionIDEnvVar)
	}
	if sessionID == "" {
		sessionID = session.NewID()
	}

	shellVersion := args.shellVersion
	if shellVersion == "" {
		shellVersion = session.ShellVersion(cfg.Shell.Tag)
	}

	var opts []bridge.ExecOption
	if timeout := cfg.RendererTimeout(); timeout > 0 {
		opts = append(opts, bridge.WithTimeout(timeout))
	}

	renderer, err := bridge.NewExecRenderer(cfg.Renderer.Path, cfg.Renderer.Theme, opts...)
	if err != nil {
		return nil, err
	}

	return bridge.New(bridge.Config{
		Executable:   cfg.Renderer.Path,
		Theme:        cfg.Renderer.Theme,
		ShellTag:     cfg.Shell.Tag,
		ShellVersion: shellVersion,
		SessionID:    sessionID,
	}, provider, renderer), nil
}

// historyProvider picks the command-result source: results the shim already
// extracted win over a configured session log; with neither, every draw sees
// an empty history.
func historyProvider(cfg *config.Config, args promptArgs) history.Provider {
	if args.explicit {
		return &history.StaticProvider{Record: history.StaticRecord(args.status, args.executionTime)}
	}
	if cfg.Shell.HistoryFile != "" {
		return history.NewFileProvider(cfg.Shell.HistoryFile)
	}
	return &history.StaticProvider{Empty: true}
}
