package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/brixybrice/Resolve-job-notification/internal/config"
	clierrors "github.com/brixybrice/Resolve-job-notification/internal/errors"
)

// Color helper functions for init/doctor output
var (
	cGreen  = color.New(color.FgGreen).SprintFunc()
	cYellow = color.New(color.FgYellow).SprintFunc()
	cDim    = color.New(color.Faint).SprintFunc()
	cBold   = color.New(color.Bold).SprintFunc()
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the settings template",
	Long: `Create the settings template for resolve-notify.

The template is written with placeholder values for slack_token,
channel_name, and log_directory. An existing settings file is left
unchanged (use --force to overwrite it with a fresh template).

The send command performs the same bootstrap on first run; init only makes
it explicit so setup does not cost a render.`,
	Example: `  # Create the template next to the binary
  resolve-notify init

  # Start over with a fresh template
  resolve-notify init --force`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInitCmd,
}

func init() {
	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing settings with a fresh template")
	rootCmd.AddCommand(initCmd)
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()
	path := settingsPath(cmd)

	if force {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			cliErr := clierrors.ConfigCreateFailed(path, err)
			clierrors.FprintError(cmd.ErrOrStderr(), cliErr)
			return cliErr
		}
	}

	created, err := config.EnsureExists(path)
	if err != nil {
		cliErr := clierrors.ConfigCreateFailed(path, err)
		clierrors.FprintError(cmd.ErrOrStderr(), cliErr)
		return cliErr
	}

	if !created {
		fmt.Fprintf(out, "%s %s: already exists at %s\n", cGreen("✓"), cBold("Settings"), cDim(path))
		fmt.Fprintf(out, "  Use %s to overwrite with a fresh template\n", cBold("--force"))
		return nil
	}

	setup := clierrors.ConfigCreated(path)
	fmt.Fprintf(out, "%s %s: template created at %s\n", cGreen("✓"), cBold("Settings"), cDim(path))
	fmt.Fprintf(out, "\n%s\n", cYellow("Next steps:"))
	for i, step := range setup.Remediation {
		fmt.Fprintf(out, "  %d. %s\n", i+1, step)
	}
	return nil
}
