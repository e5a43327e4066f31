package application

import (
	"encoding/json"
	"fmt"

	"github.com/skilltrail/skilltrail/internal/domain"
	"github.com/skilltrail/skilltrail/internal/domain/events"
	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
	"github.com/skilltrail/skilltrail/internal/infrastructure/schema"
)

// RoadmapService loads, validates, and imports roadmaps.
type RoadmapService struct {
	repo     domain.WorkspaceRepository
	activity domain.ActivityLogger
}

func NewRoadmapService(repo domain.WorkspaceRepository, activity domain.ActivityLogger) *RoadmapService {
	return &RoadmapService{repo: repo, activity: activity}
}

// Load returns the authored roadmap as stored.
func (s *RoadmapService) Load() (*roadmap.Roadmap, error) {
	return s.repo.LoadRoadmap()
}

// LoadMerged returns the roadmap with the learner's progress statuses
// applied on top of the authored statuses.
func (s *RoadmapService) LoadMerged() (*roadmap.Roadmap, error) {
	rm, err := s.repo.LoadRoadmap()
	if err != nil {
		return nil, err
	}

	state, err := s.repo.LoadProgress()
	if err != nil {
		return nil, err
	}
	state.Apply(rm)
	return rm, nil
}

// Validate checks the stored roadmap for structural problems.
func (s *RoadmapService) Validate() ([]error, error) {
	rm, err := s.repo.LoadRoadmap()
	if err != nil {
		return nil, err
	}
	return rm.Validate(), nil
}

// ImportJSON validates a JSON roadmap document against the schema and
// replaces the stored roadmap with it.
func (s *RoadmapService) ImportJSON(data []byte) (*roadmap.Roadmap, error) {
	if err := schema.ValidateRoadmapJSON(string(data)); err != nil {
		return nil, err
	}

	var rm roadmap.Roadmap
	if err := json.Unmarshal(data, &rm); err != nil {
		return nil, fmt.Errorf("failed to parse roadmap JSON: %w", err)
	}

	normalizeStatuses(rm.Steps)

	if errs := rm.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("imported roadmap is invalid: %v", errs[0])
	}

	if err := s.repo.SaveRoadmap(&rm); err != nil {
		return nil, err
	}

	if s.activity != nil {
		_ = s.activity.Log(events.TypeRoadmapImported, rm.ID, map[string]interface{}{
			"title": rm.Title,
			"steps": rm.TotalSteps(),
		})
	}
	return &rm, nil
}

// ExportJSON renders the stored roadmap as indented JSON.
func (s *RoadmapService) ExportJSON() ([]byte, error) {
	rm, err := s.repo.LoadRoadmap()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(rm, "", "  ")
}

// normalizeStatuses fills in missing statuses: the first root step and its
// subtree start unlocked, everything after starts locked.
func normalizeStatuses(steps []roadmap.Step) {
	for i := range steps {
		def := roadmap.StatusLocked
		if i == 0 {
			def = roadmap.StatusUnlocked
		}
		fillStatus(&steps[i], def)
	}
}

func fillStatus(step *roadmap.Step, def roadmap.StepStatus) {
	if step.Status == "" {
		step.Status = def
	}
	for i := range step.Children {
		fillStatus(&step.Children[i], def)
	}
}
