package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

var stepEvidence string

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Move a step through its lifecycle",
}

// lifecycleCmd builds one subcommand per lifecycle event so that
// 'skilltrail step start <id>' reads naturally.
func lifecycleCmd(event, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <step-id>", event),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := loadServicesForCurrentDir()
			if err != nil {
				return err
			}

			status, err := services.Progress.TransitionStep(args[0], event, stepEvidence)
			if err != nil {
				return MapError(err)
			}

			fmt.Printf("Step %s is now %s\n", args[0], status)
			if status == roadmap.StatusCompleted {
				if summary, err := services.Progress.Summarize(); err == nil {
					fmt.Printf("Points: %d (%s)\n", summary.Profile.Points, summary.Profile.LevelName)
				}
			}
			return nil
		},
	}
}

func init() {
	stepCmd.PersistentFlags().StringVar(&stepEvidence, "evidence", "", "Attach a note or link as evidence")

	stepCmd.AddCommand(lifecycleCmd(roadmap.EventStart, "Start working on a step"))
	stepCmd.AddCommand(lifecycleCmd(roadmap.EventStop, "Pause a step you started"))
	stepCmd.AddCommand(lifecycleCmd(roadmap.EventComplete, "Mark a step as completed"))
	stepCmd.AddCommand(lifecycleCmd(roadmap.EventFail, "Mark a step as failed"))
	stepCmd.AddCommand(lifecycleCmd(roadmap.EventRetry, "Retry a failed step"))
	stepCmd.AddCommand(lifecycleCmd(roadmap.EventReset, "Reset a finished step back to unlocked"))
	stepCmd.AddCommand(lifecycleCmd(roadmap.EventUnlock, "Unlock a locked step"))
	stepCmd.AddCommand(lifecycleCmd(roadmap.EventLock, "Lock a step again"))

	RootCmd.AddCommand(stepCmd)
}
