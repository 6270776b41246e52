package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	// current holds the active logging configuration. It is applied to
	// loggers created after Configure is called; already-created loggers
	// keep their settings.
	current   Config
	currentMu sync.Mutex
)

// Configure sets the logging configuration used by subsequently created
// loggers. Typically called once after the promptbridge.toml config is loaded.
func Configure(cfg Config) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = cfg
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	currentMu.Lock()
	logCfg := current
	currentMu.Unlock()

	logger := logrus.New()

	// Configure Level
	levelStr := "info"
	if os.Getenv("PROMPTBRIDGE_LOG_LEVEL") != "" {
		levelStr = os.Getenv("PROMPTBRIDGE_LOG_LEVEL")
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configure Caller Reporting
	if os.Getenv("PROMPTBRIDGE_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	// Configure Formatter
	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	// Configure Output Sinks. stdout is reserved for prompt text, so the
	// default sink is a date-based file under the user cache directory.
	var writers []io.Writer

	logFilePath := logFilePathFor(component, logCfg)
	if logFilePath != "" {
		dir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(dir, 0o755); err == nil {
			file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				writers = append(writers, file)
			}
		}
	}

	if logCfg.Stderr || os.Getenv("PROMPTBRIDGE_LOG_STDERR") == "true" {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

func logFilePathFor(component string, cfg Config) string {
	if cfg.File.Enabled && cfg.File.Path != "" {
		return expandPath(cfg.File.Path)
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}

	dateStr := time.Now().Format("2006-01-02")
	return filepath.Join(cacheDir, "promptbridge", "logs", fmt.Sprintf("%s-%s.log", component, dateStr))
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Reset clears all cached loggers. This is primarily used for testing.
func Reset() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	loggers = make(map[string]*logrus.Entry)
}
