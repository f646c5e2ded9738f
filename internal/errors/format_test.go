// Package errors_test tests CLI error formatting and error output utilities.
// Related: internal/errors/format.go
// Tags: errors, formatting, colors, output
package errors

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Run("nil error returns empty string", func(t *testing.T) {
		t.Parallel()
		result := FormatError(nil)
		if result != "" {
			t.Errorf("Expected empty string, got %q", result)
		}
	})

	t.Run("channel failure carries category heading", func(t *testing.T) {
		t.Parallel()
		err := NewChannelError("slack post to C12345678 failed", &testError{})

		result := FormatError(err)

		if !strings.Contains(result, "Chat Delivery Error") {
			t.Error("Expected output to contain 'Chat Delivery Error'")
		}
		if !strings.Contains(result, "slack post to C12345678 failed") {
			t.Error("Expected output to contain the delivery message")
		}
	})

	t.Run("remediation renders as numbered steps", func(t *testing.T) {
		t.Parallel()
		err := ConfigCreated("/scripts/resolve_slack_settings.json")

		result := FormatError(err)

		if !strings.Contains(result, "To fix this:") {
			t.Error("Expected output to contain 'To fix this:'")
		}
		if !strings.Contains(result, "1. Edit the file and set slack_token") {
			t.Error("Expected first step to name the settings keys")
		}
		if !strings.Contains(result, "2. Run 'resolve-notify doctor'") {
			t.Error("Expected second step to point at doctor")
		}
	})

	t.Run("no remediation means no fix section", func(t *testing.T) {
		t.Parallel()
		err := NewDesktopError("osascript failed", &testError{})

		result := FormatError(err)

		if strings.Contains(result, "To fix this:") {
			t.Error("Expected no 'To fix this:' section without remediation steps")
		}
	})
}

func TestFprintError(t *testing.T) {
	t.Run("nil error does nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		FprintError(&buf, nil)

		if buf.Len() != 0 {
			t.Errorf("Expected no output for nil error, got %q", buf.String())
		}
	})

	t.Run("writes error to buffer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := ChatSDKUnavailable("slack_sdk", "pip install failed")

		FprintError(&buf, err)

		if !strings.Contains(buf.String(), "slack_sdk") {
			t.Error("Expected buffer to contain the package name")
		}
		if !strings.Contains(buf.String(), "Dependency Error") {
			t.Error("Expected buffer to contain the category heading")
		}
	})
}
