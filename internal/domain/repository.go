// Package domain defines shared contracts between the application layer and
// infrastructure.
package domain

import (
	"github.com/skilltrail/skilltrail/internal/domain/events"
	"github.com/skilltrail/skilltrail/internal/domain/gamification"
	"github.com/skilltrail/skilltrail/internal/domain/progress"
	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

// WorkspaceRepository handles persistence of skilltrail artifacts in the
// .skilltrail/ directory.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool
	SaveRoadmap(r *roadmap.Roadmap) error
	LoadRoadmap() (*roadmap.Roadmap, error)
	SaveProgress(state *progress.State) error
	LoadProgress() (*progress.State, error)
	SaveProfile(profile *gamification.Profile) error
	LoadProfile() (*gamification.Profile, error)
}

// ActivityLogger records activity events.
type ActivityLogger interface {
	Log(eventType, aggregateID string, metadata map[string]interface{}) error
}

// EventStore persists the append-only activity log.
type EventStore interface {
	Append(event *events.BaseEvent) error
	ReadAll() ([]events.BaseEvent, error)
	GetLastEvent() (*events.BaseEvent, error)
	VerifyChain() error
}
