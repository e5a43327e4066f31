package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <roadmap.json>",
	Short: "Import a roadmap from a JSON file",
	Long: `Import a roadmap from a JSON file.

The document is validated against the roadmap schema before it replaces
the stored roadmap. Steps without an authored status start locked, except
the first root step and its subtree, which start unlocked.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := requireInitialized(services); err != nil {
			return err
		}

		rm, err := services.Roadmap.ImportJSON(data)
		if err != nil {
			return err
		}

		fmt.Printf("Imported roadmap %q with %d steps\n", rm.Title, rm.TotalSteps())
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored roadmap as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		data, err := services.Roadmap.ExportJSON()
		if err != nil {
			return MapError(err)
		}

		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	},
}

func init() {
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(exportCmd)
}
