package notify

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrUnavailable reports a platform whose notification facility cannot be
// reached. Unlike a transient send failure it is known before any attempt.
type ErrUnavailable struct {
	Platform string
	Reason   string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("desktop notifications unavailable on %s: %s", e.Platform, e.Reason)
}

// Sender is a platform-specific notification backend. The context bounds the
// underlying subprocess so a wedged notification tool is killed, not orphaned.
type Sender interface {
	// SendVisual sends a visual notification to the OS notification system
	SendVisual(ctx context.Context, n Notification) error

	// SendSound plays an audio notification
	SendSound(ctx context.Context, soundFile string) error

	// VisualAvailable returns true if visual notifications are supported
	VisualAvailable() bool

	// SoundAvailable returns true if sound notifications are supported
	SoundAvailable() bool
}

// NewSender creates the notification sender for the current OS.
// Unsupported platforms get a sender that reports ErrUnavailable on use;
// the failure is logged per-channel rather than swallowed.
func NewSender() Sender {
	switch runtime.GOOS {
	case "darwin":
		return newDarwinSender()
	case "linux":
		return newLinuxSender()
	case "windows":
		return newWindowsSender()
	default:
		return &unavailableSender{reason: "unsupported platform"}
	}
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// unavailableSender fails every attempt with ErrUnavailable
type unavailableSender struct {
	reason string
}

func (s *unavailableSender) err() error {
	return &ErrUnavailable{Platform: runtime.GOOS, Reason: s.reason}
}

func (s *unavailableSender) SendVisual(_ context.Context, _ Notification) error { return s.err() }
func (s *unavailableSender) SendSound(_ context.Context, _ string) error        { return s.err() }
func (s *unavailableSender) VisualAvailable() bool                              { return false }
func (s *unavailableSender) SoundAvailable() bool                               { return false }

// supportedAudioExtensions contains file extensions supported for custom sounds
var supportedAudioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".flac": true,
	".m4a":  true,
}

// ValidateSoundFile checks if the sound file exists and has a supported
// format. Returns the validated path, or empty string to fall back to the
// platform default.
func ValidateSoundFile(soundFile string) string {
	if soundFile == "" {
		return ""
	}

	info, err := os.Stat(soundFile)
	if err != nil || info.IsDir() {
		return ""
	}

	ext := strings.ToLower(filepath.Ext(soundFile))
	if !supportedAudioExtensions[ext] {
		return ""
	}

	return soundFile
}
