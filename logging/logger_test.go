package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerSingleton(t *testing.T) {
	Reset()

	first := NewLogger("bridge")
	second := NewLogger("bridge")

	assert.Same(t, first, second, "NewLogger should return the same entry per component")

	other := NewLogger("doctor")
	assert.NotSame(t, first, other)
}

func TestNewLoggerRespectsConfiguredLevel(t *testing.T) {
	Reset()
	Configure(Config{Level: "debug"})
	defer Configure(Config{})

	entry := NewLogger("level-test")
	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
}

func TestTextFormatter(t *testing.T) {
	formatter := &TextFormatter{}

	logger := logrus.New()
	entry := logger.WithField("component", "bridge")
	entry.Time = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	entry.Level = logrus.WarnLevel
	entry.Message = "renderer exited non-zero"

	out, err := formatter.Format(entry)
	require.NoError(t, err)

	line := string(out)
	assert.Contains(t, line, "2025-03-14 09:30:00")
	assert.Contains(t, line, "[WARN]")
	assert.Contains(t, line, "[bridge]")
	assert.Contains(t, line, "renderer exited non-zero")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestTextFormatterSimplePreset(t *testing.T) {
	formatter := &TextFormatter{Config: FormatConfig{
		DisableTimestamp: true,
		DisableComponent: true,
	}}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	entry := logger.WithField("component", "bridge")
	entry.Level = logrus.InfoLevel
	entry.Message = "session started"

	out, err := formatter.Format(entry)
	require.NoError(t, err)

	line := string(out)
	assert.NotContains(t, line, "[bridge]")
	assert.Equal(t, "[INFO] session started\n", line)
}
