package wiring

import (
	"github.com/skilltrail/skilltrail/internal/application"
	domainai "github.com/skilltrail/skilltrail/internal/domain/ai"
	"github.com/skilltrail/skilltrail/internal/infrastructure/ai"
)

// AppServices exposes the application layer services wired together with a
// workspace.
type AppServices struct {
	Workspace *Workspace
	Roadmap   *application.RoadmapService
	Progress  *application.ProgressService
	Gamify    *application.GamificationService
	Generate  *application.GenerateService
	Provider  domainai.Provider
}

// BuildAppServices constructs the services for a repo root in dependency
// order.
func BuildAppServices(root string) (*AppServices, error) {
	workspace, err := NewWorkspace(root)
	if err != nil {
		return nil, err
	}

	provider, err := ai.NewResilientFromConfig(workspace.Config.AI)
	if err != nil {
		// An unusable AI config must not break non-generate commands
		provider = ai.NewResilientProvider(ai.NewOllamaProvider("", ""))
	}

	roadmapSvc := application.NewRoadmapService(workspace.Repo, workspace.Activity)
	gamifySvc := application.NewGamificationService(workspace.Activity)
	progressSvc := application.NewProgressService(workspace.Repo, workspace.Activity, gamifySvc)
	generateSvc := application.NewGenerateService(provider, roadmapSvc, workspace.Activity)

	return &AppServices{
		Workspace: workspace,
		Roadmap:   roadmapSvc,
		Progress:  progressSvc,
		Gamify:    gamifySvc,
		Generate:  generateSvc,
		Provider:  provider,
	}, nil
}
