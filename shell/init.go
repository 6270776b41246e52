package shell

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/grovetools/promptbridge/errors"
)

//go:embed scripts/bridge.xsh
var xonshInit string

// InitOptions carries the session values substituted into the integration
// script. They are fixed at script-generation time and constant for the
// session's lifetime.
type InitOptions struct {
	// Executable is the promptbridge binary the hooks invoke. Resolved from
	// the running process when empty.
	Executable string

	// ConfigPath is the promptbridge.toml the hooks load, forwarded so every
	// prompt draw resolves the same configuration.
	ConfigPath string

	// SessionID is the session identifier exported to the shell environment.
	SessionID string

	// Features selects optional script pieces.
	Features Features
}

// Init returns the integration script for the given shell. The script
// defines the prompt hook functions and assigns them to the shell's prompt
// variables.
func Init(shell string, opts InitOptions) (string, error) {
	if !Supported(shell) {
		return "", errors.ShellUnsupported(shell)
	}

	executable := opts.Executable
	if executable == "" {
		var err error
		executable, err = os.Executable()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrCodeInternal, "could not resolve own executable path")
		}
	}

	script := strings.NewReplacer(
		"::BRIDGE::", escapePyStr(executable),
		"::CONFIG::", escapePyStr(opts.ConfigPath),
		"::SESSION_ID::", escapePyStr(opts.SessionID),
	).Replace(xonshInit)

	return opts.Features.Lines(shell).String(script), nil
}

// NoExeScript returns a shell line reporting a missing executable, used when
// script generation itself cannot proceed.
func NoExeScript(shell string) string {
	return fmt.Sprintf("echo \"%s integration unavailable: promptbridge executable not found\"", shell)
}

// escapePyStr escapes a value for interpolation into a double-quoted Python
// string literal in the generated xonsh script.
func escapePyStr(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
