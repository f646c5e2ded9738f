//go:build darwin

package notify

import (
	"context"
	"fmt"
	"os/exec"
)

const (
	// DefaultMacOSSound is the default notification sound on macOS
	DefaultMacOSSound = "/System/Library/Sounds/Glass.aiff"
)

// darwinSender implements Sender for macOS using osascript and afplay
type darwinSender struct {
	visualAvailable bool
	soundAvailable  bool
}

// newDarwinSender creates a new macOS notification sender
func newDarwinSender() Sender {
	return &darwinSender{
		visualAvailable: toolAvailable("osascript"),
		soundAvailable:  toolAvailable("afplay"),
	}
}

// newLinuxSender returns an unavailable sender on darwin
func newLinuxSender() Sender {
	return &unavailableSender{reason: "wrong platform"}
}

// newWindowsSender returns an unavailable sender on darwin
func newWindowsSender() Sender {
	return &unavailableSender{reason: "wrong platform"}
}

// SendVisual sends a visual notification using osascript
func (s *darwinSender) SendVisual(ctx context.Context, n Notification) error {
	if !s.visualAvailable {
		return &ErrUnavailable{Platform: "darwin", Reason: "osascript not found in PATH"}
	}

	script := fmt.Sprintf(`display notification %q with title %q`, n.Message, n.Title)

	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("osascript failed: %w (%s)", err, out)
	}
	return nil
}

// SendSound plays a sound using afplay
func (s *darwinSender) SendSound(ctx context.Context, soundFile string) error {
	if !s.soundAvailable {
		return &ErrUnavailable{Platform: "darwin", Reason: "afplay not found in PATH"}
	}

	validatedFile := ValidateSoundFile(soundFile)
	if validatedFile == "" {
		validatedFile = DefaultMacOSSound
	}

	return exec.CommandContext(ctx, "afplay", validatedFile).Run()
}

// VisualAvailable returns true if osascript is available
func (s *darwinSender) VisualAvailable() bool {
	return s.visualAvailable
}

// SoundAvailable returns true if afplay is available
func (s *darwinSender) SoundAvailable() bool {
	return s.soundAvailable
}
