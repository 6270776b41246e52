// Package bridge connects a shell's prompt hooks to an external prompt
// renderer. On every prompt draw it reads the last command's result from a
// history provider, invokes the renderer, and hands the captured output back
// to the shell unmodified.
package bridge

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/promptbridge/history"
	"github.com/grovetools/promptbridge/logging"
)

// Config holds the values fixed for the lifetime of a shell session. All
// fields are write-once at startup and read on every prompt draw.
type Config struct {
	// Executable is the path to the external prompt renderer.
	Executable string

	// Theme is an opaque configuration reference forwarded to the renderer.
	Theme string

	// ShellTag identifies the host shell (e.g., "xonsh") in renderer
	// invocations.
	ShellTag string

	// ShellVersion is the host shell's version string, read once at startup.
	ShellVersion string

	// SessionID distinguishes concurrent shell instances. Generated once per
	// session; the renderer uses it for instance-scoped state.
	SessionID string
}

// Bridge renders prompt text by delegating to a Renderer.
type Bridge struct {
	cfg      Config
	provider history.Provider
	renderer Renderer
	log      *logrus.Entry
}

// New creates a Bridge. The provider supplies the last command's result and
// the renderer produces the prompt text.
func New(cfg Config, provider history.Provider, renderer Renderer) *Bridge {
	return &Bridge{
		cfg:      cfg,
		provider: provider,
		renderer: renderer,
		log:      logging.NewLogger("bridge"),
	}
}

// Config returns the session configuration the bridge was built with.
func (b *Bridge) Config() Config {
	return b.cfg
}

// RenderPrimary renders the primary (left-aligned) prompt.
func (b *Bridge) RenderPrimary(ctx context.Context) (string, error) {
	return b.render(ctx, ModePrimary)
}

// RenderRight renders the right-aligned prompt.
func (b *Bridge) RenderRight(ctx context.Context) (string, error) {
	return b.render(ctx, ModeRight)
}

func (b *Bridge) render(ctx context.Context, mode Mode) (string, error) {
	status, duration := b.lastCommandResult()

	out, err := b.renderer.Render(ctx, Invocation{
		Mode:           mode,
		ShellTag:       b.cfg.ShellTag,
		Status:         status,
		DurationMillis: duration,
		ShellVersion:   b.cfg.ShellVersion,
		SessionID:      b.cfg.SessionID,
	})
	if err != nil {
		return "", err
	}

	return TrimTrailingNewline(out), nil
}

// lastCommandResult reads the newest history record. Before any command has
// run, and when the history source itself fails, both values are zero.
func (b *Bridge) lastCommandResult() (status int, durationMillis int64) {
	record, ok, err := b.provider.Last()
	if err != nil {
		b.log.WithError(err).Debug("history read failed, using zero command result")
		return 0, 0
	}
	if !ok {
		return 0, 0
	}
	return record.Status, record.DurationMillis()
}

// TrimTrailingNewline strips exactly one trailing newline from the captured
// renderer output, honoring a CRLF pair. Any further whitespace belongs to
// the renderer's prompt text and is preserved.
func TrimTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		s = strings.TrimSuffix(s, "\n")
		s = strings.TrimSuffix(s, "\r")
	}
	return s
}
