package session

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/grovetools/promptbridge/errors"
)

// Record captures the immutable facts of one shell session. It is written
// when the integration script is generated and read back by diagnostics.
type Record struct {
	ID           string    `yaml:"id"`
	ShellTag     string    `yaml:"shell"`
	ShellVersion string    `yaml:"shell_version,omitempty"`
	Renderer     string    `yaml:"renderer"`
	Theme        string    `yaml:"theme,omitempty"`
	StartedAt    time.Time `yaml:"started_at"`
}

// recordPath returns the path of the latest-session record file.
func recordPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "promptbridge", "session.yml"), nil
}

// Save writes the record as the latest session.
func (r Record) Save() error {
	path, err := recordPath()
	if err != nil {
		return errors.SessionWrite("", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.SessionWrite(path, err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return errors.SessionWrite(path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.SessionWrite(path, err)
	}

	return nil
}

// Load reads the latest session record. A missing file returns a zero Record
// and found=false.
func Load() (Record, bool, error) {
	path, err := recordPath()
	if err != nil {
		return Record{}, false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, false, nil
		}
		return Record{}, false, err
	}

	var record Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return Record{}, false, err
	}

	return record, true, nil
}
