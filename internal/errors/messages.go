package errors

import "fmt"

// ConfigCreated signals the first-run bootstrap: the settings template was
// written and the operator must fill it in before any delivery can happen.
func ConfigCreated(path string) *CLIError {
	return NewBootstrapError(
		fmt.Sprintf("settings template created at %s", path),
		"Edit the file and set slack_token, channel_name, and log_directory",
		"Run 'resolve-notify doctor' to verify the setup",
	)
}

// ConfigCreateFailed reports a failure to write the bootstrap template
func ConfigCreateFailed(path string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("failed to create settings template at %s: %v", path, err),
		Remediation: []string{
			"Check that the directory is writable",
		},
		Err: err,
	}
}

// ConfigInvalid reports a settings file that failed to parse or validate
func ConfigInvalid(path string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("invalid settings file %s: %v", path, err),
		Remediation: []string{
			"Fix the reported field in the settings file",
			"Run 'resolve-notify doctor' to verify the configuration",
		},
		Err: err,
	}
}

// ConfigFieldMissing reports a required settings field that is absent or empty
func ConfigFieldMissing(field string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("'%s' is missing or empty", field),
		fmt.Sprintf("Set '%s' in the settings file", field),
	)
}

// InterpreterNotFound reports that the host's Python interpreter is not on PATH
func InterpreterNotFound(interpreter string) *CLIError {
	return NewDependencyError(
		fmt.Sprintf("host interpreter %q not found in PATH", interpreter),
		"Install Python 3 or set host_python in the settings file",
	)
}

// ChatSDKUnavailable reports that the chat SDK could not be installed or imported
func ChatSDKUnavailable(pkg, reason string) *CLIError {
	return NewDependencyError(
		fmt.Sprintf("chat SDK %q unavailable: %s", pkg, reason),
		fmt.Sprintf("Install it manually: python3 -m pip install %s", pkg),
	)
}

// LogDirectoryUnusable reports a log directory that cannot be created or written
func LogDirectoryUnusable(dir string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("cannot use log directory %s: %v", dir, err),
		Remediation: []string{
			"Set log_directory to a writable path in the settings file",
		},
		Err: err,
	}
}
