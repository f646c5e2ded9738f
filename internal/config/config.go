// Package config implements the settings store for resolve-notify.
// Settings live in a single JSON file next to the installed binary and are
// loaded read-only once per invocation. A missing file triggers bootstrap
// (template creation) instead of an error; see bootstrap.go.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	clierrors "github.com/brixybrice/Resolve-job-notification/internal/errors"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "RESOLVE_NOTIFY_"

// Desktop holds presentation settings for the desktop notification channel
type Desktop struct {
	Title     string `koanf:"title"`
	Sound     bool   `koanf:"sound"`
	SoundFile string `koanf:"sound_file"`
}

// Config is the resolve-notify settings object.
// slack_token, channel_name, and log_directory must be present and non-empty
// before any delivery attempt.
type Config struct {
	SlackToken     string  `koanf:"slack_token" validate:"required"`
	ChannelName    string  `koanf:"channel_name" validate:"required"`
	LogDirectory   string  `koanf:"log_directory" validate:"required"`
	RequestTimeout int     `koanf:"request_timeout" validate:"min=1,max=300"` // seconds, bounds every outbound call
	HostPython     string  `koanf:"host_python" validate:"required"`
	ChatSDK        string  `koanf:"chat_sdk" validate:"required"`
	Desktop        Desktop `koanf:"desktop"`
}

// Timeout returns the request timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Load reads and validates the settings file at path.
// Priority: Environment variables > settings file > defaults.
// A missing file is reported as an error wrapping fs.ErrNotExist so callers
// can bootstrap instead of failing; any other error means the configuration
// is invalid and the run must halt before any network or OS call.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("settings file %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, fmt.Errorf("settings file %s is empty", path)
	}

	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to seed default %s: %w", key, err)
		}
	}

	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	// Expand home directory in paths
	cfg.LogDirectory = expandHomePath(strings.TrimSpace(cfg.LogDirectory))
	cfg.Desktop.SoundFile = expandHomePath(cfg.Desktop.SoundFile)
	cfg.SlackToken = strings.TrimSpace(cfg.SlackToken)
	cfg.ChannelName = strings.TrimSpace(cfg.ChannelName)

	return &cfg, nil
}

// IsNotExist reports whether err signals a missing settings file
// (the bootstrap case rather than a real failure).
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// validateConfig runs struct validation and converts the first failure into
// an error naming the offending settings key.
func validateConfig(cfg *Config) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(koanfTagName)

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		if f.Tag() == "required" {
			return clierrors.ConfigFieldMissing(f.Field())
		}
		return clierrors.NewConfigError(
			fmt.Sprintf("'%s' must satisfy %s=%s (got %v)", f.Field(), f.Tag(), f.Param(), f.Value()),
			fmt.Sprintf("Set '%s' to a value within the documented range", f.Field()),
		)
	}
	return fmt.Errorf("settings validation failed: %w", err)
}

// koanfTagName reports validation failures under the settings key name
// rather than the Go struct field name.
func koanfTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// envTransform converts environment variable names to settings keys
// Example: RESOLVE_NOTIFY_SLACK_TOKEN -> slack_token
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if path == "~" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return homeDir
		}
	}
	if strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
