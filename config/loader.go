package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/grovetools/promptbridge/errors"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "PROMPTBRIDGE_CONFIG"

// Resolve determines the config file path. Precedence: the explicit flag
// value, then $PROMPTBRIDGE_CONFIG, then ~/.config/promptbridge.toml. An
// empty return with a nil error means no config file exists and defaults
// apply.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.ConfigNotFound(explicit)
		}
		return explicit, nil
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", errors.ConfigNotFound(envPath)
		}
		return envPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}

	defaultPath := filepath.Join(home, ".config", "promptbridge.toml")
	if _, err := os.Stat(defaultPath); err != nil {
		return "", nil
	}

	return defaultPath, nil
}

// Load reads and parses the config file at path, layered over defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "could not read configuration")
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "could not parse configuration").
			WithDetail("path", path)
	}

	return cfg, nil
}

// LoadOrDefault resolves and loads the configuration, falling back to
// defaults when no file exists.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Resolve(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// RendererTimeout parses the configured renderer timeout. Empty or invalid
// values mean no timeout.
func (c *Config) RendererTimeout() time.Duration {
	if c.Renderer.Timeout == "" {
		return 0
	}

	d, err := time.ParseDuration(c.Renderer.Timeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}
