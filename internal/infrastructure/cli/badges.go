package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilltrail/skilltrail/internal/domain/gamification"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List earned badges and what is still locked",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		profile, err := services.Workspace.Repo.LoadProfile()
		if err != nil {
			return MapError(err)
		}

		fmt.Println("Badges")
		fmt.Println("------")
		for _, badge := range gamification.Catalog {
			mark := "[ ]"
			if profile.HasBadge(badge.Name) {
				mark = "[x]"
			}
			fmt.Printf("%s %-20s %s\n", mark, badge.Name, badge.Description)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(badgesCmd)
}
