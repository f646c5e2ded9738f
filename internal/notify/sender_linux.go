//go:build linux

package notify

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// linuxSender implements Sender for Linux using notify-send and paplay
type linuxSender struct {
	visualAvailable bool
	soundAvailable  bool
}

// newLinuxSender creates a new Linux notification sender
func newLinuxSender() Sender {
	return &linuxSender{
		visualAvailable: toolAvailable("notify-send") && hasDisplay(),
		soundAvailable:  toolAvailable("paplay"),
	}
}

// newDarwinSender returns an unavailable sender on linux
func newDarwinSender() Sender {
	return &unavailableSender{reason: "wrong platform"}
}

// newWindowsSender returns an unavailable sender on linux
func newWindowsSender() Sender {
	return &unavailableSender{reason: "wrong platform"}
}

// hasDisplay checks if a display environment is available
func hasDisplay() bool {
	if os.Getenv("DISPLAY") != "" {
		return true
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return false
}

// SendVisual sends a visual notification using notify-send
func (s *linuxSender) SendVisual(ctx context.Context, n Notification) error {
	if !s.visualAvailable {
		return &ErrUnavailable{Platform: "linux", Reason: "notify-send or display not available"}
	}

	// Failed renders get critical urgency so they survive do-not-disturb
	urgency := "normal"
	if n.Kind == KindFailure {
		urgency = "critical"
	}

	cmd := exec.CommandContext(ctx, "notify-send", "-u", urgency, n.Title, n.Message)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("notify-send failed: %w (%s)", err, out)
	}
	return nil
}

// SendSound plays a sound using paplay
func (s *linuxSender) SendSound(ctx context.Context, soundFile string) error {
	if !s.soundAvailable {
		return &ErrUnavailable{Platform: "linux", Reason: "paplay not found in PATH"}
	}

	// No default sound on Linux; skip when no valid custom file is set
	validatedFile := ValidateSoundFile(soundFile)
	if validatedFile == "" {
		return nil
	}

	return exec.CommandContext(ctx, "paplay", validatedFile).Run()
}

// VisualAvailable returns true if notify-send is available and display is present
func (s *linuxSender) VisualAvailable() bool {
	return s.visualAvailable
}

// SoundAvailable returns true if paplay is available
func (s *linuxSender) SoundAvailable() bool {
	return s.soundAvailable
}
