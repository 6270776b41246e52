package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *BridgeError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *BridgeError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// RendererNotFound creates an error for a missing renderer executable
func RendererNotFound(path string) *BridgeError {
	return New(ErrCodeRendererNotFound, fmt.Sprintf("renderer executable not found: %s", path)).
		WithDetail("path", path)
}

// RendererFailed creates an error for a failed renderer invocation
func RendererFailed(executable string, err error) *BridgeError {
	bridgeErr := Wrap(err, ErrCodeRendererFailed, fmt.Sprintf("renderer invocation failed: %s", executable)).
		WithDetail("executable", executable)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		bridgeErr = bridgeErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return bridgeErr
}

// HistoryUnavailable creates an error for an unreadable history source
func HistoryUnavailable(source string, err error) *BridgeError {
	return Wrap(err, ErrCodeHistoryUnavailable, fmt.Sprintf("history source unavailable: %s", source)).
		WithDetail("source", source)
}

// ShellUnsupported creates an error for a shell without integration support
func ShellUnsupported(shell string) *BridgeError {
	return New(ErrCodeShellUnsupported, fmt.Sprintf("shell '%s' is not supported", shell)).
		WithDetail("shell", shell)
}

// SessionWrite creates an error for a failed session record write
func SessionWrite(path string, err error) *BridgeError {
	return Wrap(err, ErrCodeSessionWrite, fmt.Sprintf("failed to write session record: %s", path)).
		WithDetail("path", path)
}

// InvalidInput creates an invalid input error
func InvalidInput(field, reason string) *BridgeError {
	return New(ErrCodeInvalidInput, fmt.Sprintf("invalid %s: %s", field, reason)).
		WithDetail("field", field)
}
