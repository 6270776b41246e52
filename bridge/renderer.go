package bridge

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/grovetools/promptbridge/command"
	"github.com/grovetools/promptbridge/errors"
)

// Mode selects which prompt segment the renderer produces.
type Mode string

const (
	ModePrimary Mode = "primary"
	ModeRight   Mode = "right"
)

// ThemeEnvVar carries the theme/config reference to the renderer subprocess.
// The renderer reads its configuration from this variable rather than from an
// argument, so the value stays opaque to the bridge.
const ThemeEnvVar = "POSH_THEME"

// SessionEnvVar carries the session identifier to the renderer subprocess.
const SessionEnvVar = "POSH_SESSION_ID"

// Invocation holds the arguments of one renderer call.
type Invocation struct {
	Mode           Mode
	ShellTag       string
	Status         int
	DurationMillis int64
	ShellVersion   string
	SessionID      string
}

// Args returns the renderer's command-line arguments for this invocation.
func (inv Invocation) Args() []string {
	return []string{
		"print",
		string(inv.Mode),
		fmt.Sprintf("--shell=%s", inv.ShellTag),
		fmt.Sprintf("--status=%d", inv.Status),
		fmt.Sprintf("--execution-time=%d", inv.DurationMillis),
		fmt.Sprintf("--shell-version=%s", inv.ShellVersion),
	}
}

// Renderer turns invocation arguments into prompt text. Implementations are
// synchronous; a call blocks the prompt draw until it returns.
type Renderer interface {
	Render(ctx context.Context, inv Invocation) (string, error)
}

// ExecRenderer invokes the external renderer executable as a subprocess and
// captures its stdout.
type ExecRenderer struct {
	executable string
	theme      string
	timeout    time.Duration
	builder    *command.Builder
}

// ExecOption configures an ExecRenderer.
type ExecOption func(*ExecRenderer)

// WithExecutor substitutes the subprocess executor, letting tests point the
// renderer at fake scripts.
func WithExecutor(exec command.Executor) ExecOption {
	return func(r *ExecRenderer) {
		r.builder = command.NewBuilderWithExecutor(exec)
	}
}

// WithTimeout bounds each renderer invocation. Zero (the default) means the
// call blocks until the subprocess exits, which mirrors the host shell's own
// behavior of hanging on a wedged prompt command.
func WithTimeout(d time.Duration) ExecOption {
	return func(r *ExecRenderer) {
		r.timeout = d
	}
}

// NewExecRenderer creates a renderer backed by the executable at the given
// path. The theme reference is exported to the subprocess environment.
func NewExecRenderer(executable, theme string, opts ...ExecOption) (*ExecRenderer, error) {
	r := &ExecRenderer{
		executable: executable,
		theme:      theme,
		builder:    command.NewBuilder(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.builder.Validate("executable", executable); err != nil {
		return nil, errors.InvalidInput("renderer executable", err.Error())
	}

	return r, nil
}

// Render implements Renderer. Stdout is captured as UTF-8 text; stderr is
// left attached to the terminal so renderer diagnostics stay visible.
func (r *ExecRenderer) Render(ctx context.Context, inv Invocation) (string, error) {
	if err := r.builder.Validate("mode", string(inv.Mode)); err != nil {
		return "", errors.InvalidInput("mode", err.Error())
	}
	if err := r.builder.Validate("shellTag", inv.ShellTag); err != nil {
		return "", errors.InvalidInput("shell tag", err.Error())
	}

	cmd, err := r.builder.Build(ctx, r.executable, inv.Args()...)
	if err != nil {
		return "", errors.InvalidInput("renderer invocation", err.Error())
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		cmd, cancel = cmd.WithTimeout(r.timeout)
		defer cancel()
	}

	execCmd := cmd.Exec()
	execCmd.Stderr = os.Stderr
	execCmd.Env = append(os.Environ(),
		fmt.Sprintf("%s=%s", ThemeEnvVar, r.theme),
		fmt.Sprintf("%s=%s", SessionEnvVar, inv.SessionID),
	)

	out, err := execCmd.Output()
	if err != nil {
		if execErr, ok := err.(*exec.Error); ok && execErr.Err == exec.ErrNotFound {
			return "", errors.RendererNotFound(r.executable)
		}
		return "", errors.RendererFailed(r.executable, err)
	}

	return string(out), nil
}
