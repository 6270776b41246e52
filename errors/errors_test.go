package errors

import (
	"fmt"
	"testing"
)

func TestBridgeError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeRendererNotFound, "renderer not found")
	if err.Code != ErrCodeRendererNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeRendererNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeRendererFailed, "renderer failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test HasCode function
	if !HasCode(wrapped, ErrCodeRendererFailed) {
		t.Error("HasCode should return true for matching code")
	}

	if HasCode(wrapped, ErrCodeRendererNotFound) {
		t.Error("HasCode should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("path", "/usr/local/bin/omp").WithDetail("attempts", 1)
	if detailed.Details["path"] != "/usr/local/bin/omp" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test RendererNotFound
	err := RendererNotFound("/opt/render")
	if err.Code != ErrCodeRendererNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeRendererNotFound, err.Code)
	}
	if err.Details["path"] != "/opt/render" {
		t.Error("RendererNotFound should include path detail")
	}

	// Test ShellUnsupported
	err = ShellUnsupported("tcsh")
	if err.Code != ErrCodeShellUnsupported {
		t.Errorf("expected code %s, got %s", ErrCodeShellUnsupported, err.Code)
	}
	if err.Details["shell"] != "tcsh" {
		t.Error("ShellUnsupported should include shell detail")
	}

	// Test HistoryUnavailable
	cause := fmt.Errorf("permission denied")
	err = HistoryUnavailable("/tmp/session.jsonl", cause)
	if err.Code != ErrCodeHistoryUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodeHistoryUnavailable, err.Code)
	}
	if err.Unwrap() != cause {
		t.Error("HistoryUnavailable should wrap the cause")
	}
}
