package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/skilltrail/skilltrail/internal/domain/gamification"
	"github.com/skilltrail/skilltrail/internal/domain/progress"
)

func (r *FilesystemRepository) SaveProgress(state *progress.State) error {
	return r.writeJSON(ProgressFile, state)
}

// LoadProgress returns the stored progress, or fresh empty progress when the
// file does not exist yet.
func (r *FilesystemRepository) LoadProgress() (*progress.State, error) {
	path, err := r.ResolvePath(ProgressFile)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return progress.NewState(""), nil
		}
		return nil, fmt.Errorf("failed to read progress file: %w", err)
	}

	var state progress.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	if state.StepResults == nil {
		state.StepResults = make(map[string]progress.StepResult)
	}

	return &state, nil
}

func (r *FilesystemRepository) SaveProfile(profile *gamification.Profile) error {
	return r.writeJSON(ProfileFile, profile)
}

// LoadProfile returns the stored gamification profile, or a zeroed profile
// at the bottom level when the file does not exist yet.
func (r *FilesystemRepository) LoadProfile() (*gamification.Profile, error) {
	path, err := r.ResolvePath(ProfileFile)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &gamification.Profile{
				LevelName: gamification.LevelForPoints(gamification.DefaultLevels, 0).Name,
			}, nil
		}
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile gamification.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}
