package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skilltrail/skilltrail/internal/render"
)

var (
	showAll   bool
	showPlain bool
	showJSON  bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the roadmap tree with your progress",
	Long: `Show the roadmap tree with your progress applied.

Modules and sections at the root render expanded; deeper ones render
collapsed. Use --all to expand everything.

Examples:
  skilltrail show
  skilltrail show --all
  skilltrail show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		rm, err := services.Roadmap.LoadMerged()
		if err != nil {
			return MapError(err)
		}

		if showJSON {
			data, err := services.Roadmap.ExportJSON()
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		}

		renderer := render.NewRenderer(rm.Steps)
		if showPlain {
			renderer = render.NewPlainRenderer(rm.Steps)
		}
		if showAll {
			renderer.ExpandAll(rm.Steps)
		}

		if rm.Title != "" {
			fmt.Println(render.TitleStyle.Render(" " + rm.Title + " "))
		}
		fmt.Print(renderer.Render(rm.Steps))
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Expand every module and section")
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Disable ANSI styling")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output the authored roadmap as JSON")
	RootCmd.AddCommand(showCmd)
}
