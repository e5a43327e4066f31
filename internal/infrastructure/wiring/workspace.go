// Package wiring constructs the application services for a workspace root.
package wiring

import (
	"path/filepath"

	"github.com/skilltrail/skilltrail/internal/application"
	"github.com/skilltrail/skilltrail/internal/infrastructure/config"
	"github.com/skilltrail/skilltrail/internal/infrastructure/storage"
	"github.com/skilltrail/skilltrail/internal/infrastructure/webhook"
)

// Workspace bundles core infrastructure dependencies.
type Workspace struct {
	Root      string
	Repo      *storage.FilesystemRepository
	Events    *storage.FileEventStore
	Publisher *storage.InMemoryEventPublisher
	Activity  *application.ActivityService
	Notifier  *webhook.Notifier
	Config    *config.Config
}

// NewWorkspace wires storage, the event log, and webhook delivery for a
// repository root.
func NewWorkspace(root string) (*Workspace, error) {
	repo := storage.NewFilesystemRepository(root)

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	basePath := filepath.Join(root, storage.SkilltrailDir)
	eventStore, err := storage.NewFileEventStore(basePath)
	if err != nil {
		return nil, err
	}

	publisher := storage.NewInMemoryEventPublisher()

	var notifier *webhook.Notifier
	if len(cfg.Webhooks) > 0 {
		dlStore := webhook.NewDeadLetterStore(filepath.Join(basePath, storage.DeadLetterFile))
		notifier = webhook.NewNotifier(cfg.Webhooks, dlStore)
	}

	var activityNotifier application.Notifier
	if notifier != nil {
		activityNotifier = notifier
	}

	return &Workspace{
		Root:      root,
		Repo:      repo,
		Events:    eventStore,
		Publisher: publisher,
		Activity:  application.NewActivityService(eventStore, publisher, activityNotifier),
		Notifier:  notifier,
		Config:    cfg,
	}, nil
}
