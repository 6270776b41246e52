package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequirePosixShell skips the test on platforms without /bin/sh, which the
// fake renderer scripts depend on.
func RequirePosixShell(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake renderer scripts require a POSIX shell")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
}

// EchoArgsScript is a fake renderer body that prints its arguments joined by
// spaces, letting tests assert on the exact invocation contract.
const EchoArgsScript = `echo "$@"`

// WriteFakeRenderer writes an executable shell script into a temp directory
// and returns its path. The body runs under /bin/sh with the renderer's
// arguments and environment.
func WriteFakeRenderer(t *testing.T, body string) string {
	t.Helper()

	RequirePosixShell(t)

	path := filepath.Join(t.TempDir(), "fake-renderer")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return path
}

// TempConfigFile writes content to a promptbridge.toml in a temp directory
// and returns its path.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "promptbridge.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}
