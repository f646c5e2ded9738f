package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	errTitle  = color.New(color.FgRed, color.Bold).SprintFunc()
	errYellow = color.New(color.FgYellow).SprintFunc()
)

// FormatError formats a CLIError for terminal output with colors
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", errTitle(err.Category.String()), err.Message)

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", errYellow("To fix this:"))
		for i, step := range err.Remediation {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
	}

	return b.String()
}

// FprintError writes a formatted CLIError to the given writer
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
