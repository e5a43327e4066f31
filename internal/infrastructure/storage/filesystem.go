// Package storage persists skilltrail artifacts under the .skilltrail
// workspace directory.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"gopkg.in/yaml.v3"

	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

const SkilltrailDir = ".skilltrail"
const RoadmapFile = "roadmap.yaml"
const ProgressFile = "progress.json"
const ProfileFile = "gamification.json"
const EventsFile = "events.jsonl"
const ConfigFile = "config.yaml"
const DeadLetterFile = "deadletter.jsonl"

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// ResolvePath ensures the path is within the .skilltrail directory and
// prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, SkilltrailDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, SkilltrailDir)
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .skilltrail directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, SkilltrailDir))
	return err == nil
}

// RoadmapPath returns the absolute path of the roadmap file, for watchers.
func (r *FilesystemRepository) RoadmapPath() string {
	return filepath.Join(r.root, SkilltrailDir, RoadmapFile)
}

func (r *FilesystemRepository) SaveRoadmap(rm *roadmap.Roadmap) error {
	path, err := r.ResolvePath(RoadmapFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(rm)
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadRoadmap() (*roadmap.Roadmap, error) {
	retryer := retry.New[*roadmap.Roadmap](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*roadmap.Roadmap, error) {
		path, err := r.ResolvePath(RoadmapFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read roadmap file: %w", err)
		}

		var rm roadmap.Roadmap
		if err := yaml.Unmarshal(data, &rm); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roadmap: %w", err)
		}

		return &rm, nil
	})
}

// writeJSON persists machine state files with stable indentation.
func (r *FilesystemRepository) writeJSON(filename string, v interface{}) error {
	path, err := r.ResolvePath(filename)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filename, err)
	}

	return os.WriteFile(path, data, 0600)
}
