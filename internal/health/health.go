// Package health implements the environment checks behind 'resolve-notify doctor'.
package health

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/brixybrice/Resolve-job-notification/internal/config"
	"github.com/brixybrice/Resolve-job-notification/internal/deps"
	clierrors "github.com/brixybrice/Resolve-job-notification/internal/errors"
	"github.com/brixybrice/Resolve-job-notification/internal/notify"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// Report contains all health check results
type Report struct {
	Checks []CheckResult
	Passed bool
}

// Params configures the health checks. Ensurer and Sender are injectable
// for tests; nil selects the production implementations.
type Params struct {
	ConfigPath string
	Config     *config.Config
	ConfigErr  error
	Ensurer    *deps.Ensurer
	Sender     notify.Sender
}

// RunChecks runs all health checks and returns a report
func RunChecks(ctx context.Context, p Params) *Report {
	report := &Report{Passed: true}

	add := func(c CheckResult) {
		report.Checks = append(report.Checks, c)
		if !c.Passed {
			report.Passed = false
		}
	}

	add(checkSettings(p))

	if p.Config == nil {
		// Without valid settings the remaining checks have nothing to verify
		return report
	}

	add(checkLogDirectory(p.Config.LogDirectory))
	add(checkInterpreter(p.Config.HostPython))
	add(checkChatSDK(ctx, p))
	add(checkDesktop(p.Sender))

	return report
}

func checkSettings(p Params) CheckResult {
	name := "Settings file"
	switch {
	case p.ConfigErr == nil:
		return CheckResult{Name: name, Passed: true, Message: fmt.Sprintf("valid settings at %s", p.ConfigPath)}
	case config.IsNotExist(p.ConfigErr):
		return CheckResult{Name: name, Passed: false, Message: fmt.Sprintf("not found at %s (run 'resolve-notify init')", p.ConfigPath)}
	default:
		return CheckResult{Name: name, Passed: false, Message: clierrors.ConfigInvalid(p.ConfigPath, p.ConfigErr).Error()}
	}
}

// checkLogDirectory verifies the configured directory can be created and
// written; the probe file is removed afterwards.
func checkLogDirectory(dir string) CheckResult {
	name := "Log directory"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return CheckResult{Name: name, Passed: false, Message: clierrors.LogDirectoryUnusable(dir, err).Error()}
	}
	probe := filepath.Join(dir, ".resolve-notify-doctor")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return CheckResult{Name: name, Passed: false, Message: clierrors.LogDirectoryUnusable(dir, err).Error()}
	}
	os.Remove(probe)
	return CheckResult{Name: name, Passed: true, Message: fmt.Sprintf("%s is writable", dir)}
}

func checkInterpreter(interpreter string) CheckResult {
	name := "Host interpreter"
	path, err := exec.LookPath(interpreter)
	if err != nil {
		return CheckResult{Name: name, Passed: false, Message: clierrors.InterpreterNotFound(interpreter).Error()}
	}
	return CheckResult{Name: name, Passed: true, Message: path}
}

func checkChatSDK(ctx context.Context, p Params) CheckResult {
	name := "Chat SDK"
	ensurer := p.Ensurer
	if ensurer == nil {
		ensurer = deps.New(p.Config.HostPython, p.Config.ChatSDK, p.Config.Timeout())
	}
	if err := ensurer.Probe(ctx); err != nil {
		return CheckResult{Name: name, Passed: false, Message: fmt.Sprintf("%s not importable (run 'resolve-notify doctor --install')", p.Config.ChatSDK)}
	}
	return CheckResult{Name: name, Passed: true, Message: fmt.Sprintf("%s importable", p.Config.ChatSDK)}
}

func checkDesktop(sender notify.Sender) CheckResult {
	name := "Desktop notifications"
	if sender == nil {
		sender = notify.NewSender()
	}
	if !sender.VisualAvailable() {
		return CheckResult{Name: name, Passed: false, Message: fmt.Sprintf("facility unavailable on %s", notify.Platform())}
	}
	return CheckResult{Name: name, Passed: true, Message: fmt.Sprintf("available on %s", notify.Platform())}
}

// FormatReport formats the health report for console output
func FormatReport(report *Report) string {
	var output string

	for _, check := range report.Checks {
		if check.Passed {
			output += fmt.Sprintf("✓ %s: %s\n", check.Name, check.Message)
		} else {
			output += fmt.Sprintf("✗ %s: %s\n", check.Name, check.Message)
		}
	}

	return output
}
