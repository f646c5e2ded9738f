// Package cli provides the Cobra commands for resolve-notify: the
// host-invoked delivery run (send), first-run bootstrap (init), environment
// checks (doctor), and version.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/brixybrice/Resolve-job-notification/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "resolve-notify",
	Short: "Slack and desktop notifications for completed DaVinci Resolve render jobs",
	Long: `resolve-notify delivers a one-line status notification when a DaVinci
Resolve Deliver render job finishes: one message to a Slack channel and one
native desktop notification.

It is invoked once per completed job by a thin hook script in Resolve's
script-discovery directory, runs the delivery pipeline, and exits. Failures
are written to a daily log file and never crash the host.`,
	Example: `  # First-time setup: create the settings template
  resolve-notify init

  # Verify settings, interpreter, chat SDK, and desktop facility
  resolve-notify doctor

  # Deliver a completed-job notification (normally called by the hook)
  resolve-notify send --project MyProject --timeline Timeline_01 \
    --output master_prores.mov --status Complete`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the settings file (default: resolve_slack_settings next to the binary)")
}

// settingsPath resolves the settings file path from the --config flag,
// falling back to the deployment default next to the binary.
func settingsPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultPath()
}
