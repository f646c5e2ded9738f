package cli

import (
	"github.com/spf13/cobra"

	"github.com/brixybrice/Resolve-job-notification/internal/hook"
	"github.com/brixybrice/Resolve-job-notification/internal/render"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Deliver the notification for a completed render job",
	Long: `Deliver the status notification for one completed render job to Slack
and to the local desktop.

This is the command the Resolve hook invokes. It never prints usage or
errors: the host reads only the exit code, the operator reads the daily log.

Exit codes:
  0  delivered (including partial channel failure)
  1  unexpected fault
  2  settings template just created, edit it and relaunch
  3  settings missing or invalid
  4  chat SDK unavailable`,
	Example: `  resolve-notify send --project MyProject --timeline Timeline_01 \
    --output master_prores.mov --status Complete

  resolve-notify send --project MyProject --timeline Timeline_01 \
    --output master_prores.mov --status Failed --error "disk full"`,
	// The host sees exit codes only; usage noise would land in its console
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSend,
}

func init() {
	sendCmd.Flags().String("project", "", "Project name reported by the host")
	sendCmd.Flags().String("timeline", "", "Timeline name reported by the host")
	sendCmd.Flags().String("output", "", "Output filename reported by the host")
	sendCmd.Flags().String("status", "", "Render status (Complete/Failed; empty falls back to Unknown)")
	sendCmd.Flags().String("error", "", "Error detail for failed renders")
	sendCmd.Flags().String("job-id", "", "Render job identifier, logged but not part of the message")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	job := jobFromFlags(cmd)

	runner := hook.New(settingsPath(cmd), cmd.OutOrStdout())
	outcome := runner.Run(cmd.Context(), job)
	if outcome.Code != ExitSuccess {
		return NewExitError(outcome.Code)
	}
	return nil
}

// jobFromFlags builds the job descriptor from the host-supplied flags
func jobFromFlags(cmd *cobra.Command) render.JobResult {
	project, _ := cmd.Flags().GetString("project")
	timeline, _ := cmd.Flags().GetString("timeline")
	output, _ := cmd.Flags().GetString("output")
	status, _ := cmd.Flags().GetString("status")
	errorDetail, _ := cmd.Flags().GetString("error")
	jobID, _ := cmd.Flags().GetString("job-id")

	return render.JobResult{
		JobID:       jobID,
		Project:     project,
		Timeline:    timeline,
		OutputFile:  output,
		Status:      render.ParseStatus(status),
		ErrorDetail: errorDetail,
	}
}
