// Package errors provides structured CLI errors with categories,
// remediation steps, and terminal formatting for resolve-notify.
package errors

import "errors"

// ErrorCategory classifies an error for display and exit-code mapping
type ErrorCategory int

const (
	// Bootstrap indicates a first-run signal: the config file was just created
	Bootstrap ErrorCategory = iota
	// Configuration indicates invalid or incomplete configuration
	Configuration
	// Dependency indicates the chat SDK is missing and could not be installed
	Dependency
	// Channel indicates chat delivery failed (auth, network, or service-side)
	Channel
	// Desktop indicates the native notification facility failed
	Desktop
	// Runtime indicates an unanticipated fault caught at the outer boundary
	Runtime
)

// String returns the human-readable category name
func (c ErrorCategory) String() string {
	switch c {
	case Bootstrap:
		return "Setup Required"
	case Configuration:
		return "Configuration Error"
	case Dependency:
		return "Dependency Error"
	case Channel:
		return "Chat Delivery Error"
	case Desktop:
		return "Desktop Notification Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category, remediation steps,
// and an optional wrapped cause.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Remediation []string
	Err         error
}

func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause, if any
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewBootstrapError creates a Bootstrap error (first-run config creation)
func NewBootstrapError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Bootstrap,
		Message:     message,
		Remediation: remediation,
	}
}

// NewConfigError creates a Configuration error with remediation steps
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewDependencyError creates a Dependency error with remediation steps
func NewDependencyError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Dependency,
		Message:     message,
		Remediation: remediation,
	}
}

// NewChannelError creates a Channel error wrapping the delivery failure
func NewChannelError(message string, err error) *CLIError {
	return &CLIError{
		Category: Channel,
		Message:  message,
		Err:      err,
	}
}

// NewDesktopError creates a Desktop error wrapping the facility failure
func NewDesktopError(message string, err error) *CLIError {
	return &CLIError{
		Category: Desktop,
		Message:  message,
		Err:      err,
	}
}

// NewRuntimeError creates a Runtime error with remediation steps
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     message,
		Remediation: remediation,
	}
}

// AsCLIError returns the CLIError within err, or nil if there is none
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}
