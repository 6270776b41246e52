package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/promptbridge/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. Create ~/.config/promptbridge.toml or pass --config.\n")
		return err

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(os.Stderr, "❌ Invalid configuration: %v\n", err)
		return err

	case errors.ErrCodeRendererNotFound:
		if bridgeErr, ok := err.(*errors.BridgeError); ok {
			fmt.Fprintf(os.Stderr, "❌ Renderer executable '%s' not found\n", bridgeErr.Details["path"])
			fmt.Fprintf(os.Stderr, "Check renderer.path in promptbridge.toml.\n")
		}
		return err

	case errors.ErrCodeRendererFailed:
		if bridgeErr, ok := err.(*errors.BridgeError); ok {
			fmt.Fprintf(os.Stderr, "❌ Renderer '%s' failed\n", bridgeErr.Details["executable"])
			if exitCode, ok := bridgeErr.Details["exitCode"]; ok {
				fmt.Fprintf(os.Stderr, "Exit code: %v\n", exitCode)
			}
		}
		return err

	case errors.ErrCodeShellUnsupported:
		if bridgeErr, ok := err.(*errors.BridgeError); ok {
			fmt.Fprintf(os.Stderr, "❌ Shell '%s' has no integration script\n", bridgeErr.Details["shell"])
			fmt.Fprintf(os.Stderr, "Run 'promptbridge init xonsh' for the supported shell.\n")
		}
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if bridgeErr, ok := err.(*errors.BridgeError); ok {
				fmt.Fprintf(os.Stderr, "%s\n", bridgeErr.ToJSON())
			}
		}
		return err
	}
}
