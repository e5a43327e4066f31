package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/skilltrail/skilltrail/internal/infrastructure/storage"
	"github.com/skilltrail/skilltrail/internal/infrastructure/watch"
	"github.com/skilltrail/skilltrail/internal/infrastructure/wiring"
	"github.com/skilltrail/skilltrail/internal/render"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the roadmap whenever the workspace changes on disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := requireInitialized(services); err != nil {
			return err
		}

		lastHash := renderCurrent(services, "")

		watcher, err := watch.NewWorkspaceWatcher(500*time.Millisecond, func(ev watch.ChangeEvent) {
			fmt.Printf("\nWorkspace changed at %s (%s)\n", time.Now().Format("15:04:05"), ev.ChangeType)
			lastHash = renderCurrent(services, lastHash)
		})
		if err != nil {
			return err
		}

		dir := filepath.Join(services.Workspace.Root, storage.SkilltrailDir)
		if err := watcher.Watch(dir); err != nil {
			return err
		}

		fmt.Printf("Watching %s for changes... (Ctrl+C to stop)\n", dir)
		return watcher.Run(cmd.Context())
	},
}

// renderCurrent prints the merged tree when its content hash moved.
func renderCurrent(services *wiring.AppServices, lastHash string) string {
	rm, err := services.Roadmap.LoadMerged()
	if err != nil {
		fmt.Printf("cannot load roadmap: %v\n", err)
		return lastHash
	}

	hash := rm.Hash()
	if hash == lastHash {
		return lastHash
	}

	renderer := render.NewRenderer(rm.Steps)
	renderer.ExpandAll(rm.Steps)
	fmt.Print(renderer.Render(rm.Steps))
	return hash
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
