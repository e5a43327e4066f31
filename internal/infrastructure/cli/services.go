package cli

import (
	"fmt"
	"os"

	"github.com/skilltrail/skilltrail/internal/infrastructure/wiring"
)

// loadServicesForCurrentDir wires the application services for the workspace
// rooted at the current directory.
func loadServicesForCurrentDir() (*wiring.AppServices, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}
	return wiring.BuildAppServices(cwd)
}

// requireInitialized fails with a hint when no workspace exists yet.
func requireInitialized(services *wiring.AppServices) error {
	if !services.Workspace.Repo.IsInitialized() {
		return NewCLIError(
			"no skilltrail workspace found",
			"Run 'skilltrail init' in the directory you want to track",
			nil,
		)
	}
	return nil
}
