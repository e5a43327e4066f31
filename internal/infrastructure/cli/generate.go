package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a roadmap for a topic with AI",
	Long: `Generate a roadmap for a topic with AI.

The provider and model come from .skilltrail/config.yaml. The generated
document goes through the same schema validation as 'skilltrail import'.

Examples:
  skilltrail generate "Rust for Go developers"
  skilltrail generate "Linear algebra basics"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := requireInitialized(services); err != nil {
			return err
		}

		fmt.Printf("Generating roadmap for %q with %s...\n", topic, services.Provider.ID())

		rm, err := services.Generate.Generate(cmd.Context(), topic)
		if err != nil {
			return err
		}

		fmt.Printf("Generated roadmap %q with %d steps. Run 'skilltrail show' to see it.\n",
			rm.Title, rm.TotalSteps())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)
}
