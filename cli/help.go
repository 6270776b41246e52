package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const maxWidth = 60
const minWidth = 40

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	sectionStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("208"))
	cmdStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
)

// SetStyledHelp applies consistent promptbridge styling to a command's help
// output. Call this on the root command before Execute().
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
}

// getTerminalWidth returns the terminal width capped at maxWidth.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minWidth {
		return maxWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}

// wrapText wraps text to the specified width, preserving existing line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxWidth
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			result = append(result, paragraph)
			continue
		}

		var line string
		for _, word := range strings.Fields(paragraph) {
			if line == "" {
				line = word
			} else if len(line)+1+len(word) <= width {
				line += " " + word
			} else {
				result = append(result, line)
				line = word
			}
		}
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

func styledHelpFunc(cmd *cobra.Command, _ []string) {
	width := getTerminalWidth() - 2

	fmt.Println(" " + titleStyle.Render(strings.ToUpper(cmd.CommandPath())))

	description := cmd.Long
	if description == "" {
		description = cmd.Short
	}
	if description != "" {
		for _, line := range strings.Split(wrapText(strings.TrimSpace(description), width), "\n") {
			fmt.Println(" " + line)
		}
	}

	if cmd.Runnable() {
		fmt.Println()
		fmt.Println(" " + sectionStyle.Render("USAGE"))
		fmt.Println("  " + cmd.UseLine())
	}

	subcommands := visibleSubcommands(cmd)
	if len(subcommands) > 0 {
		fmt.Println()
		fmt.Println(" " + sectionStyle.Render("COMMANDS"))
		nameWidth := 0
		for _, sub := range subcommands {
			if len(sub.Name()) > nameWidth {
				nameWidth = len(sub.Name())
			}
		}
		for _, sub := range subcommands {
			fmt.Printf("  %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-*s", nameWidth, sub.Name())), sub.Short)
		}
	}

	var flagLines []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		flagLines = append(flagLines, fmt.Sprintf("  %-22s %s", name, f.Usage))
	})
	if len(flagLines) > 0 {
		fmt.Println()
		fmt.Println(" " + sectionStyle.Render("FLAGS"))
		for _, line := range flagLines {
			fmt.Println(line)
		}
	}

	if len(subcommands) > 0 {
		fmt.Println()
		fmt.Println(" " + mutedStyle.Render(fmt.Sprintf("Use '%s [command] --help' for details.", cmd.CommandPath())))
	}
}

func visibleSubcommands(cmd *cobra.Command) []*cobra.Command {
	var subs []*cobra.Command
	for _, sub := range cmd.Commands() {
		if sub.Hidden || !sub.IsAvailableCommand() {
			continue
		}
		subs = append(subs, sub)
	}
	return subs
}

// PrintError prints a styled error message to stderr with a help hint.
func PrintError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", errorStyle.Render("Error:"), err.Error())
	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", mutedStyle.Render(fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath())))
}
