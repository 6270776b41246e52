package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/grovetools/promptbridge/cli"
	"github.com/grovetools/promptbridge/session"
)

// doctorReport is the diagnostic snapshot printed by the doctor command.
type doctorReport struct {
	ConfigPath    string `json:"configPath,omitempty"`
	RendererPath  string `json:"rendererPath,omitempty"`
	RendererFound bool   `json:"rendererFound"`
	Theme         string `json:"theme,omitempty"`
	ShellTag      string `json:"shellTag"`
	RightPrompt   bool   `json:"rightPrompt"`
	HistoryFile   string `json:"historyFile,omitempty"`
	ColorProfile  string `json:"colorProfile"`
	Interactive   bool   `json:"interactive"`

	Session *session.Record `json:"session,omitempty"`
}

// NewDoctorCmd creates the doctor command, which reports the resolved
// configuration and environment for debugging a broken prompt.
func NewDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the prompt integration setup",
		RunE:  runDoctor,
	}

	return cmd
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	handler := cli.NewErrorHandler(cli.GetOptions(cmd).Verbose)

	cfg, configPath, err := cli.LoadConfig(cmd)
	if err != nil {
		return handler.Handle(err)
	}

	report := doctorReport{
		ConfigPath:   configPath,
		RendererPath: cfg.Renderer.Path,
		Theme:        cfg.Renderer.Theme,
		ShellTag:     cfg.Shell.Tag,
		RightPrompt:  cfg.Shell.RightPrompt,
		HistoryFile:  cfg.Shell.HistoryFile,
		ColorProfile: colorProfileName(),
		Interactive:  isatty.IsTerminal(os.Stdout.Fd()),
	}

	if cfg.Renderer.Path != "" {
		if _, err := exec.LookPath(cfg.Renderer.Path); err == nil {
			report.RendererFound = true
		}
	}

	if record, found, err := session.Load(); err == nil && found {
		report.Session = &record
	}

	if cli.GetOptions(cmd).JSONOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printDoctorReport(cmd, report)
	return nil
}

func printDoctorReport(cmd *cobra.Command, report doctorReport) {
	out := cmd.OutOrStdout()

	check := func(ok bool) string {
		if ok {
			return "✓"
		}
		return "✗"
	}

	configDesc := report.ConfigPath
	if configDesc == "" {
		configDesc = "(defaults, no file found)"
	}
	fmt.Fprintf(out, "Config:        %s\n", configDesc)
	fmt.Fprintf(out, "Renderer:      %s %s\n", check(report.RendererFound), report.RendererPath)
	if report.Theme != "" {
		fmt.Fprintf(out, "Theme:         %s\n", report.Theme)
	}
	fmt.Fprintf(out, "Shell:         %s (right prompt: %v)\n", report.ShellTag, report.RightPrompt)
	if report.HistoryFile != "" {
		fmt.Fprintf(out, "History file:  %s\n", report.HistoryFile)
	}
	fmt.Fprintf(out, "Terminal:      %s, interactive: %v\n", report.ColorProfile, report.Interactive)

	if report.Session != nil {
		fmt.Fprintf(out, "Last session:  %s (%s %s, started %s)\n",
			report.Session.ID, report.Session.ShellTag, report.Session.ShellVersion,
			report.Session.StartedAt.Format("2006-01-02 15:04:05"))
	} else {
		fmt.Fprintf(out, "Last session:  none recorded (run 'promptbridge init xonsh')\n")
	}
}

func colorProfileName() string {
	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "no color"
	}
}
