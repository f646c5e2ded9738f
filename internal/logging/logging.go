// Package logging provides the daily append-only run log for resolve-notify.
//
// Entries are plain text lines ("2006-01-02 15:04:05 INFO message key=value")
// written once per entry to an O_APPEND handle, so concurrent invocations for
// back-to-back render jobs never interleave mid-line. Files are keyed by
// calendar date and never rotated or deleted.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// FilePrefix is the log file name prefix, matching the reference deployment
const FilePrefix = "resolve_slack_deliver"

const timeFormat = "2006-01-02 15:04:05"

// FileName returns the log file name for the given date
func FileName(t time.Time) string {
	return fmt.Sprintf("%s_%s.log", FilePrefix, t.Format("2006-01-02"))
}

// Handle owns the daily log file for the process lifetime.
// Close releases it on exit.
type Handle struct {
	file   *os.File
	path   string
	logger zerolog.Logger
}

// Open creates the log directory if missing, opens (or creates) today's log
// file in append mode, and returns a handle whose logger fans entries out to
// the file and to console (the host's scripting console).
func Open(dir string, console io.Writer) (*Handle, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(time.Now()))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	sinks := []io.Writer{lineWriter(f)}
	if console != nil {
		sinks = append(sinks, lineWriter(console))
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(sinks...)).With().Timestamp().Logger()

	return &Handle{file: f, path: path, logger: logger}, nil
}

// Logger returns the handle's logger
func (h *Handle) Logger() zerolog.Logger {
	return h.logger
}

// Path returns the resolved log file path
func (h *Handle) Path() string {
	return h.path
}

// Close releases the log file handle
func (h *Handle) Close() error {
	return h.file.Close()
}

// Bootstrap returns a console-only logger for the window before the
// configuration names the log directory.
func Bootstrap(console io.Writer) zerolog.Logger {
	if console == nil {
		console = io.Discard
	}
	return zerolog.New(lineWriter(console)).With().Timestamp().Logger()
}

// lineWriter renders one plain-text line per entry. zerolog's ConsoleWriter
// buffers the whole line and issues a single Write, which combined with
// O_APPEND keeps entries from separate invocations whole.
func lineWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         out,
		NoColor:     true,
		TimeFormat:  timeFormat,
		FormatLevel: formatLevel,
	}
}

// formatLevel maps zerolog levels onto the INFO/WARNING/ERROR vocabulary
func formatLevel(i interface{}) string {
	l, ok := i.(string)
	if !ok {
		return "INFO"
	}
	switch l {
	case zerolog.LevelWarnValue:
		return "WARNING"
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return "ERROR"
	default:
		return strings.ToUpper(l)
	}
}
