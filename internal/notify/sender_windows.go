//go:build windows

package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// windowsSender implements Sender for Windows using PowerShell
type windowsSender struct {
	visualAvailable bool
	soundAvailable  bool
}

// newWindowsSender creates a new Windows notification sender
func newWindowsSender() Sender {
	return &windowsSender{
		visualAvailable: toolAvailable("powershell"),
		soundAvailable:  toolAvailable("powershell"),
	}
}

// newDarwinSender returns an unavailable sender on windows
func newDarwinSender() Sender {
	return &unavailableSender{reason: "wrong platform"}
}

// newLinuxSender returns an unavailable sender on windows
func newLinuxSender() Sender {
	return &unavailableSender{reason: "wrong platform"}
}

// SendVisual sends a toast notification using PowerShell
func (s *windowsSender) SendVisual(ctx context.Context, n Notification) error {
	if !s.visualAvailable {
		return &ErrUnavailable{Platform: "windows", Reason: "powershell not found in PATH"}
	}

	script := fmt.Sprintf(`
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$textNodes = $template.GetElementsByTagName('text')
$textNodes.Item(0).AppendChild($template.CreateTextNode('%s')) | Out-Null
$textNodes.Item(1).AppendChild($template.CreateTextNode('%s')) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('resolve-notify').Show($toast)
`, escapeForPowerShell(n.Title), escapeForPowerShell(n.Message))

	cmd := exec.CommandContext(ctx, "powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("powershell toast failed: %w (%s)", err, out)
	}
	return nil
}

// SendSound plays a sound using PowerShell
func (s *windowsSender) SendSound(ctx context.Context, soundFile string) error {
	if !s.soundAvailable {
		return &ErrUnavailable{Platform: "windows", Reason: "powershell not found in PATH"}
	}

	validatedFile := ValidateSoundFile(soundFile)

	var script string
	if validatedFile == "" {
		// Default system beep
		script = "[Console]::Beep(800, 200)"
	} else {
		script = fmt.Sprintf(`
$player = New-Object System.Media.SoundPlayer
$player.SoundLocation = '%s'
$player.PlaySync()
`, escapeForPowerShell(validatedFile))
	}

	cmd := exec.CommandContext(ctx, "powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script)
	return cmd.Run()
}

// VisualAvailable returns true if PowerShell is available
func (s *windowsSender) VisualAvailable() bool {
	return s.visualAvailable
}

// SoundAvailable returns true if PowerShell is available
func (s *windowsSender) SoundAvailable() bool {
	return s.soundAvailable
}

// escapeForPowerShell escapes special characters for PowerShell strings
func escapeForPowerShell(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '\'':
			b.WriteString("''")
		case '`', '$':
			b.WriteByte('`')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
