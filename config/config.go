// Package config loads promptbridge.toml, the deploy-time configuration that
// fixes the renderer executable, the theme reference, and the shell
// integration options for a session.
package config

import (
	"github.com/grovetools/promptbridge/errors"
	"github.com/grovetools/promptbridge/logging"
)

// Config is the root of promptbridge.toml.
type Config struct {
	Renderer RendererConfig `toml:"renderer"`
	Shell    ShellConfig    `toml:"shell"`
	Logging  logging.Config `toml:"logging"`
}

// RendererConfig fixes the external prompt renderer for the session.
type RendererConfig struct {
	// Path is the renderer executable. Required.
	Path string `toml:"path"`

	// Theme is an opaque configuration reference passed through to the
	// renderer. The bridge never interprets it.
	Theme string `toml:"theme"`

	// Timeout bounds each renderer invocation, e.g. "500ms". Empty means no
	// timeout: the prompt draw blocks until the renderer exits.
	Timeout string `toml:"timeout"`
}

// ShellConfig controls the generated shell integration.
type ShellConfig struct {
	// Tag is the shell identity forwarded to the renderer. Defaults to
	// "xonsh", the supported integration target.
	Tag string `toml:"tag"`

	// RightPrompt enables the right-aligned prompt hook in the generated
	// integration script.
	RightPrompt bool `toml:"right_prompt"`

	// HistoryFile is an optional JSON-lines session log to read command
	// results from, for hosts that record history themselves instead of
	// passing results per invocation.
	HistoryFile string `toml:"history_file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Tag:         "xonsh",
			RightPrompt: true,
		},
	}
}

// Validate checks the invariants commands rely on.
func (c *Config) Validate() error {
	if c.Renderer.Path == "" {
		return errors.ConfigInvalid("renderer.path is required")
	}
	if c.Shell.Tag == "" {
		return errors.ConfigInvalid("shell.tag cannot be empty")
	}
	return nil
}
