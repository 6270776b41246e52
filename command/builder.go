package command

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

const (
	// MaxTimeout caps per-invocation timeouts. A prompt draw blocking longer
	// than this means the renderer is wedged, not slow.
	MaxTimeout = 30 * time.Second
)

// Builder constructs validated subprocess invocations
type Builder struct {
	validators map[string]func(string) error
	executor   Executor
}

// NewBuilder creates a new Builder instance with a RealExecutor
func NewBuilder() *Builder {
	return NewBuilderWithExecutor(&RealExecutor{})
}

// NewBuilderWithExecutor creates a new Builder with a custom Executor
func NewBuilderWithExecutor(exec Executor) *Builder {
	return &Builder{
		validators: makeDefaultValidators(),
		executor:   exec,
	}
}

// makeDefaultValidators returns the default set of validators
func makeDefaultValidators() map[string]func(string) error {
	return map[string]func(string) error{
		"mode":       validateMode,
		"shellTag":   validateShellTag,
		"executable": validateExecutablePath,
	}
}

// validateMode ensures the prompt mode selector is one the renderer accepts
func validateMode(mode string) error {
	switch mode {
	case "primary", "right":
		return nil
	default:
		return fmt.Errorf("invalid prompt mode: %s (must be 'primary' or 'right')", mode)
	}
}

// validateShellTag ensures shell identity tags are safe to pass as arguments
func validateShellTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("shell tag cannot be empty")
	}

	validTag := regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	if !validTag.MatchString(tag) {
		return fmt.Errorf("invalid shell tag: %s (must contain only lowercase letters, digits, underscores, and hyphens)", tag)
	}

	return nil
}

// validateExecutablePath ensures the renderer path is safe
func validateExecutablePath(path string) error {
	if path == "" {
		return fmt.Errorf("executable path cannot be empty")
	}

	// Prevent command injection via shell metacharacters
	if strings.ContainsAny(path, ";|&$`\n") {
		return fmt.Errorf("executable path contains invalid characters")
	}

	return nil
}

// Command represents a validated command configuration
type Command struct {
	ctx      context.Context
	name     string
	args     []string
	executor Executor
}

// Build creates a new command
func (b *Builder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}

	return &Command{
		ctx:      ctx,
		name:     name,
		args:     args,
		executor: b.executor,
	}, nil
}

// WithTimeout applies a timeout to the command's context. The returned cancel
// function must be called after the command finishes.
func (c *Command) WithTimeout(timeout time.Duration) (*Command, context.CancelFunc) {
	if timeout > MaxTimeout {
		timeout = MaxTimeout
	}

	ctx, cancel := context.WithTimeout(c.ctx, timeout)
	c.ctx = ctx
	return c, cancel
}

// Validate validates a specific argument
func (b *Builder) Validate(argType string, value string) error {
	validator, exists := b.validators[argType]
	if !exists {
		return fmt.Errorf("no validator for argument type: %s", argType)
	}

	return validator(value)
}

// Exec creates and returns an exec.Cmd
func (c *Command) Exec() *exec.Cmd {
	return c.executor.CommandContext(c.ctx, c.name, c.args...)
}
