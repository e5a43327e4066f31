package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a high-level summary of your progress",
	Long: `Show a high-level summary of your progress.

Examples:
  skilltrail status
  skilltrail status --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		summary, err := services.Progress.Summarize()
		if err != nil {
			return MapError(err)
		}

		if statusJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}

		fmt.Printf("Roadmap: %s\n", summary.Title)
		fmt.Printf("Steps: %d\n", summary.TotalSteps)
		fmt.Printf("- Locked:      %d\n", summary.StatusCounts[roadmap.StatusLocked])
		fmt.Printf("- Unlocked:    %d\n", summary.StatusCounts[roadmap.StatusUnlocked])
		fmt.Printf("- In Progress: %d\n", summary.StatusCounts[roadmap.StatusInProgress])
		fmt.Printf("- Completed:   %d\n", summary.StatusCounts[roadmap.StatusCompleted])
		fmt.Printf("- Failed:      %d\n", summary.StatusCounts[roadmap.StatusFailed])

		fmt.Printf("\nOverall Progress: %.1f%% (%d/%d steps completed)\n",
			summary.Progress, summary.Completed, summary.TotalSteps)

		profile := summary.Profile
		fmt.Printf("\nPoints: %d (%s)\n", profile.Points, profile.LevelName)
		if profile.Streak.Current > 0 {
			fmt.Printf("Streak: %d day(s), longest %d\n", profile.Streak.Current, profile.Streak.Longest)
		}
		if len(profile.Badges) > 0 {
			fmt.Printf("Badges: %d earned ('skilltrail badges' for details)\n", len(profile.Badges))
		}

		fmt.Printf("\nActivity Log: .skilltrail/events.jsonl\n")
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(statusCmd)
}
