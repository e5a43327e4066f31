package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the stored roadmap for structural problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		problems, err := services.Roadmap.Validate()
		if err != nil {
			return MapError(err)
		}

		if len(problems) == 0 {
			fmt.Println("Roadmap is valid.")
			return nil
		}

		fmt.Printf("Found %d problem(s):\n", len(problems))
		for _, p := range problems {
			fmt.Printf("  - %v\n", p)
		}
		return fmt.Errorf("roadmap validation failed")
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
