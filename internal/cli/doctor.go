package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brixybrice/Resolve-job-notification/internal/config"
	"github.com/brixybrice/Resolve-job-notification/internal/deps"
	clierrors "github.com/brixybrice/Resolve-job-notification/internal/errors"
	"github.com/brixybrice/Resolve-job-notification/internal/health"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check settings, dependencies, and delivery channels",
	Long: `Run environment checks for resolve-notify.

This command verifies:
  - the settings file is present and valid
  - the log directory is writable
  - the host Python interpreter is on PATH
  - the chat SDK is importable in that interpreter
  - the desktop notification facility is available

Each check displays ✓ if passed or ✗ with a message if failed. With
--install, a failed chat SDK check triggers the single pip install attempt.`,
	Example: `  resolve-notify doctor
  resolve-notify doctor --install`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDoctor,
}

func init() {
	doctorCmd.Flags().Bool("install", false, "Install the chat SDK if it is not importable")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	install, _ := cmd.Flags().GetBool("install")
	out := cmd.OutOrStdout()
	path := settingsPath(cmd)

	cfg, cfgErr := config.Load(path)

	report := health.RunChecks(cmd.Context(), health.Params{
		ConfigPath: path,
		Config:     cfg,
		ConfigErr:  cfgErr,
	})
	fmt.Fprint(out, health.FormatReport(report))

	if install && cfg != nil && sdkCheckFailed(report) {
		if err := installSDK(cmd, cfg); err != nil {
			cliErr := clierrors.ChatSDKUnavailable(cfg.ChatSDK, err.Error())
			clierrors.FprintError(cmd.ErrOrStderr(), cliErr)
			return NewExitError(ExitDependencyFatal)
		}
		fmt.Fprintf(out, "%s %s installed\n", cGreen("✓"), cfg.ChatSDK)
		return nil
	}

	if !report.Passed {
		return NewExitError(ExitFault)
	}
	return nil
}

func sdkCheckFailed(report *health.Report) bool {
	for _, check := range report.Checks {
		if check.Name == "Chat SDK" && !check.Passed {
			return true
		}
	}
	return false
}

// installSDK runs the single install attempt, with a spinner on a TTY
func installSDK(cmd *cobra.Command, cfg *config.Config) error {
	stop := startSpinner(fmt.Sprintf("Installing %s...", cfg.ChatSDK))
	ensurer := deps.New(cfg.HostPython, cfg.ChatSDK, cfg.Timeout())
	result := ensurer.Ensure(cmd.Context())
	stop()

	if result.Output != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cDim(result.Output))
	}
	if !result.Ready {
		return fmt.Errorf("install failed: %s", result.Reason)
	}
	return nil
}

// startSpinner starts a progress spinner when stdout is a terminal.
// The returned func stops it; on a non-TTY it is a no-op.
func startSpinner(msg string) func() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " " + msg
	s.Start()
	return s.Stop
}
