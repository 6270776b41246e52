package session

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := NewID()

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), id, "session ID should be dashless hex")

	seen := map[string]bool{id: true}
	for i := 0; i < 100; i++ {
		next := NewID()
		assert.False(t, seen[next], "session IDs must not repeat")
		seen[next] = true
	}
}

func TestShellVersion(t *testing.T) {
	t.Setenv("XONSH_VERSION", "0.19.0")
	t.Setenv("ZSH_VERSION", "5.9")

	assert.Equal(t, "0.19.0", ShellVersion("xonsh"))
	assert.Equal(t, "5.9", ShellVersion("zsh"))
	assert.Equal(t, "", ShellVersion("tcsh"))
}

func TestRecordRoundTrip(t *testing.T) {
	// Redirect the cache dir so the test never touches the real record.
	tmp := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmp)
	t.Setenv("HOME", tmp)

	_, found, err := Load()
	require.NoError(t, err)
	assert.False(t, found, "no record should exist yet")

	record := Record{
		ID:           NewID(),
		ShellTag:     "xonsh",
		ShellVersion: "0.19.0",
		Renderer:     "/usr/local/bin/render",
		Theme:        "~/.config/theme.json",
		StartedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, record.Save())

	loaded, found, err := Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, record, loaded)
}
