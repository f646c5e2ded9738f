// Package render models the completed render job handed over by the host
// application and composes the single-line status message for delivery.
package render

import "strings"

// Status is the render job outcome reported by the host
type Status string

const (
	// StatusComplete indicates the render finished successfully
	StatusComplete Status = "Complete"
	// StatusFailed indicates the render aborted with an error
	StatusFailed Status = "Failed"
	// StatusUnknown is the fallback when the host supplied no status
	StatusUnknown Status = "Unknown"
)

// ParseStatus normalizes a host-supplied status string.
// Common success and failure spellings map onto Complete/Failed, an empty
// string falls back to Unknown, and anything else passes through verbatim.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "complete", "completed", "success":
		return StatusComplete
	case "failed", "fail", "error":
		return StatusFailed
	case "":
		return StatusUnknown
	default:
		return Status(strings.TrimSpace(s))
	}
}

// JobResult describes one completed render job. It is supplied by the host
// at invocation time, immutable for the run's duration, and never persisted.
type JobResult struct {
	JobID       string
	Project     string
	Timeline    string
	OutputFile  string
	Status      Status
	ErrorDetail string
}

// Failed reports whether the job ended in failure
func (j JobResult) Failed() bool {
	return j.Status == StatusFailed
}
