package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Settings file location relative to the installed binary, matching the
// deployment layout inside the host's script-discovery directory.
const (
	SettingsDirName  = "resolve_slack_settings"
	SettingsFileName = "resolve_slack_settings.json"
)

// Placeholder values written into the bootstrap template. The operator
// replaces them before the first real delivery.
const (
	PlaceholderToken   = "xoxb-REPLACE_WITH_YOUR_TOKEN"
	PlaceholderChannel = "CXXXXXXXX"
	PlaceholderLogDir  = "~/Desktop"
)

// template is the JSON written on first run. It contains exactly the keys an
// operator must fill in; everything else falls back to defaults.
const template = `{
  "slack_token": "` + PlaceholderToken + `",
  "channel_name": "` + PlaceholderChannel + `",
  "log_directory": "` + PlaceholderLogDir + `"
}
`

// DefaultPath returns the settings file path next to the running binary,
// falling back to the working directory when the executable path is
// unavailable.
func DefaultPath() string {
	dir, err := executableDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, SettingsDirName, SettingsFileName)
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// EnsureExists bootstraps the settings file: if path is absent, the
// containing directory and a placeholder template are created and
// created=true is returned so the caller halts for operator edit.
// An existing file is never touched (created=false, nil error).
func EnsureExists(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat settings file %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
		return false, fmt.Errorf("failed to write settings template: %w", err)
	}
	return true, nil
}
