package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Renderer errors
	ErrCodeRendererNotFound ErrorCode = "RENDERER_NOT_FOUND"
	ErrCodeRendererFailed   ErrorCode = "RENDERER_FAILED"

	// History errors
	ErrCodeHistoryUnavailable ErrorCode = "HISTORY_UNAVAILABLE"

	// Shell integration errors
	ErrCodeShellUnsupported ErrorCode = "SHELL_UNSUPPORTED"
	ErrCodeSessionWrite     ErrorCode = "SESSION_WRITE"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// BridgeError represents a structured error with context
type BridgeError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *BridgeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BridgeError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *BridgeError) WithDetail(key string, value interface{}) *BridgeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *BridgeError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new BridgeError
func New(code ErrorCode, message string) *BridgeError {
	return &BridgeError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a code and message
func Wrap(err error, code ErrorCode, message string) *BridgeError {
	return &BridgeError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// GetCode extracts the error code from an error. Errors that are not
// BridgeErrors report ErrCodeInternal.
func GetCode(err error) ErrorCode {
	if bridgeErr, ok := err.(*BridgeError); ok {
		return bridgeErr.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
