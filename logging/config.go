package logging

// Config defines the structure for the logging section of promptbridge.toml.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	// Can be overridden by the PROMPTBRIDGE_LOG_LEVEL environment variable.
	Level string `toml:"level"`

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	// Can be enabled with the PROMPTBRIDGE_LOG_CALLER=true environment variable.
	ReportCaller bool `toml:"report_caller"`

	// File configures logging to a file. When disabled, logs go to a
	// per-session file under the user cache directory. The prompt text is
	// written to stdout, so logs never go there.
	File FileSinkConfig `toml:"file"`

	// Stderr mirrors log output to stderr. Off by default: stderr output
	// during a prompt draw is visible in the user's terminal.
	Stderr bool `toml:"stderr"`

	// Format configures the appearance of the log output.
	Format FormatConfig `toml:"format"`
}

// FileSinkConfig configures the file logging sink.
type FileSinkConfig struct {
	Enabled bool `toml:"enabled"`
	// Path is the full path to the log file.
	Path string `toml:"path"`
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset string `toml:"preset"`
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool `toml:"disable_timestamp"`
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool `toml:"disable_component"`
}
