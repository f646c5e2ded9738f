// Package notify implements the desktop delivery channel: one native
// notification per completed render job, sent through the platform's own
// alerting facility (osascript, notify-send, or PowerShell).
package notify

// Kind classifies the notification for platform urgency mapping
type Kind string

const (
	// KindSuccess marks a completed render
	KindSuccess Kind = "success"
	// KindFailure marks a failed render (rendered with critical urgency where supported)
	KindFailure Kind = "failure"
)

// Notification is a single desktop notification to dispatch
type Notification struct {
	// Title is the notification title (e.g. "DaVinci Resolve")
	Title string

	// Message is the notification body, the composed status line
	Message string

	// Kind indicates whether the render completed or failed
	Kind Kind
}
