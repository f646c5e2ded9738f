package cli

import (
	"fmt"

	clierrors "github.com/brixybrice/Resolve-job-notification/internal/errors"
	"github.com/brixybrice/Resolve-job-notification/internal/hook"
)

// Exit codes for the resolve-notify CLI. The host blocks on the hook's
// completion and reads only this code; everything else goes to the log.
const (
	// ExitSuccess covers both full delivery and partial channel failure
	ExitSuccess = hook.ExitDelivered

	// ExitFault indicates an unexpected fault caught at the outer boundary
	ExitFault = hook.ExitFault

	// ExitBootstrapped indicates the settings template was just created
	ExitBootstrapped = hook.ExitBootstrapped

	// ExitConfigError indicates missing or invalid settings
	ExitConfigError = hook.ExitConfigError

	// ExitDependencyFatal indicates the chat SDK is unavailable
	ExitDependencyFatal = hook.ExitDependencyFatal
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error. Structured CLI errors map
// through their category; anything else is an unexpected fault.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Bootstrap:
			return ExitBootstrapped
		case clierrors.Configuration:
			return ExitConfigError
		case clierrors.Dependency:
			return ExitDependencyFatal
		}
		return ExitFault
	}
	return ExitFault
}
