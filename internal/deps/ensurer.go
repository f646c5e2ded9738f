// Package deps verifies that the chat SDK is importable inside the host's
// embedded Python interpreter, installing it on demand. At most one install
// attempt is made per invocation; failure is fatal for the run.
package deps

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// installTimeoutFactor scales the probe timeout for the pip install
// subprocess, which legitimately takes longer than an import probe.
const installTimeoutFactor = 8

// packagePattern restricts what is spliced into interpreter arguments
var packagePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Runner executes a subprocess and returns its combined output.
// Production uses exec.CommandContext; tests inject a fake.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Result reports the outcome of a dependency check
type Result struct {
	// Ready is true when the SDK is importable (possibly after install)
	Ready bool
	// Installed is true when the install subprocess was launched
	Installed bool
	// Output holds captured pip output, for the run log
	Output string
	// Reason explains the failure when Ready is false
	Reason string
}

// Ensurer probes and, when needed, installs the chat SDK
type Ensurer struct {
	Interpreter    string
	Package        string
	ProbeTimeout   time.Duration
	InstallTimeout time.Duration

	// Run is the subprocess runner, replaceable in tests
	Run Runner
	// Look resolves the interpreter on PATH, replaceable in tests
	Look func(name string) (string, error)
}

// New creates an Ensurer for the given interpreter and package.
// The timeout bounds the import probe; installs get a longer multiple.
func New(interpreter, pkg string, timeout time.Duration) *Ensurer {
	return &Ensurer{
		Interpreter:    interpreter,
		Package:        pkg,
		ProbeTimeout:   timeout,
		InstallTimeout: timeout * installTimeoutFactor,
		Run:            execRunner,
		Look:           exec.LookPath,
	}
}

// Probe attempts to import the package in the interpreter.
// Used both by Ensure and by doctor's health checks.
func (e *Ensurer) Probe(ctx context.Context) error {
	if !packagePattern.MatchString(e.Package) {
		return fmt.Errorf("invalid package name %q", e.Package)
	}

	ctx, cancel := context.WithTimeout(ctx, e.ProbeTimeout)
	defer cancel()

	out, err := e.Run(ctx, e.Interpreter, "-c", fmt.Sprintf("import %s", e.Package))
	if err != nil {
		return fmt.Errorf("import %s failed: %w (%s)", e.Package, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Ensure verifies the SDK is importable, installing it once if not.
// No retry loop: a failed install or failed re-probe is final for this run.
func (e *Ensurer) Ensure(ctx context.Context) Result {
	if !packagePattern.MatchString(e.Package) {
		return Result{Reason: fmt.Sprintf("invalid package name %q", e.Package)}
	}

	if _, err := e.Look(e.Interpreter); err != nil {
		return Result{Reason: fmt.Sprintf("interpreter %q not found in PATH", e.Interpreter)}
	}

	if err := e.Probe(ctx); err == nil {
		return Result{Ready: true}
	}

	// Exactly one install attempt
	installCtx, cancel := context.WithTimeout(ctx, e.InstallTimeout)
	defer cancel()

	out, err := e.Run(installCtx, e.Interpreter, "-m", "pip", "install", "--upgrade", e.Package)
	output := strings.TrimSpace(string(out))
	if err != nil {
		return Result{
			Installed: true,
			Output:    output,
			Reason:    fmt.Sprintf("pip install %s failed: %v", e.Package, err),
		}
	}

	if err := e.Probe(ctx); err != nil {
		return Result{
			Installed: true,
			Output:    output,
			Reason:    fmt.Sprintf("%s still not importable after install: %v", e.Package, err),
		}
	}

	return Result{Ready: true, Installed: true, Output: output}
}
