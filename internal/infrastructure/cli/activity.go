package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activityLimit int

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the activity log",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		entries, err := services.Workspace.Activity.Events()
		if err != nil {
			return MapError(err)
		}

		if len(entries) == 0 {
			fmt.Println("No activity recorded yet.")
			return nil
		}

		start := 0
		if activityLimit > 0 && len(entries) > activityLimit {
			start = len(entries) - activityLimit
		}
		for _, e := range entries[start:] {
			fmt.Printf("%s  %-22s %-20s %s\n",
				e.Timestamp.Format("2006-01-02 15:04:05"), e.Type, e.AggregateID, e.Actor)
		}
		return nil
	},
}

var activityVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the integrity of the activity log hash chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		if err := services.Workspace.Activity.Verify(); err != nil {
			return fmt.Errorf("activity log verification failed: %w", err)
		}
		fmt.Println("Activity log chain is intact.")
		return nil
	},
}

func init() {
	activityCmd.Flags().IntVarP(&activityLimit, "limit", "n", 0, "Show only the last N entries")
	activityCmd.AddCommand(activityVerifyCmd)
	RootCmd.AddCommand(activityCmd)
}
