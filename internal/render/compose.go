package render

import (
	"fmt"
	"strings"
)

// unspecifiedDetail is the marker rendered when a failed job carries no
// error text from the host.
const unspecifiedDetail = "unspecified"

// Compose turns a job result into the one-line notification message.
//
//	Complete [MyProject] Timeline_01 → master_prores.mov
//	Failed [MyProject] Timeline_01 → master_prores.mov (Error: disk full)
//
// Compose is pure and total: field values are emitted as given, and missing
// optional fields never produce an error.
func Compose(job JobResult) string {
	msg := fmt.Sprintf("%s [%s] %s → %s", job.Status, job.Project, job.Timeline, job.OutputFile)

	detail := strings.TrimSpace(job.ErrorDetail)
	switch {
	case job.Status == StatusFailed:
		if detail == "" {
			detail = unspecifiedDetail
		}
		return fmt.Sprintf("%s (Error: %s)", msg, detail)
	case job.Status != StatusComplete && detail != "":
		// Pass-through statuses keep the detail only when the host supplied one
		return fmt.Sprintf("%s (Error: %s)", msg, detail)
	default:
		return msg
	}
}
