// Package roadmap defines the learning roadmap tree: an ordered forest of
// steps (lessons, modules, quizzes, assignments, sections, external
// resources) with per-step progress status.
package roadmap

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Roadmap is a named learning path composed of an ordered list of steps.
type Roadmap struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Steps       []Step   `json:"steps" yaml:"steps"`
}

// Step is a single node in the roadmap tree. Children are ordered and fully
// materialized; the tree is consumed read-only by renderers.
type Step struct {
	ID                string     `json:"id" yaml:"id"`
	Title             string     `json:"title" yaml:"title"`
	Type              StepType   `json:"type" yaml:"type"`
	Status            StepStatus `json:"status" yaml:"status"`
	Description       string     `json:"description,omitempty" yaml:"description,omitempty"`
	EstimatedDuration string     `json:"estimated_duration,omitempty" yaml:"estimated_duration,omitempty"` // e.g. "30m", "2h"
	URL               string     `json:"url,omitempty" yaml:"url,omitempty"`                               // external_resource link
	Points            int        `json:"points,omitempty" yaml:"points,omitempty"`                         // reward on completion
	Quiz              *Quiz      `json:"quiz,omitempty" yaml:"quiz,omitempty"`                             // content for quiz steps
	Children          []Step     `json:"children,omitempty" yaml:"children,omitempty"`
}

// Quiz holds the questions attached to a quiz step.
type Quiz struct {
	PassScore float64    `json:"pass_score,omitempty" yaml:"pass_score,omitempty"` // defaults to 0.7
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a multiple-choice question. Options map option keys to display
// text; CorrectOptionKeys is compared set-wise against the learner's answer.
type Question struct {
	ID                string            `json:"id" yaml:"id"`
	Text              string            `json:"text" yaml:"text"`
	Options           map[string]string `json:"options" yaml:"options"`
	CorrectOptionKeys []string          `json:"correct_option_keys" yaml:"correct_option_keys"`
	Hint              string            `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// Walk visits every step in the tree depth-first, in input order, calling fn
// with the step and its depth (roots are depth 0). Walking stops early if fn
// returns false.
func (r *Roadmap) Walk(fn func(step *Step, depth int) bool) {
	walkSteps(r.Steps, 0, fn)
}

func walkSteps(steps []Step, depth int, fn func(step *Step, depth int) bool) bool {
	for i := range steps {
		if !fn(&steps[i], depth) {
			return false
		}
		if !walkSteps(steps[i].Children, depth+1, fn) {
			return false
		}
	}
	return true
}

// TotalSteps counts every step in the tree, nested descendants included.
func (r *Roadmap) TotalSteps() int {
	count := 0
	r.Walk(func(*Step, int) bool {
		count++
		return true
	})
	return count
}

// FindStep returns the step with the given ID, or nil if absent.
func (r *Roadmap) FindStep(id string) *Step {
	var found *Step
	r.Walk(func(s *Step, _ int) bool {
		if s.ID == id {
			found = s
			return false
		}
		return true
	})
	return found
}

// CountByStatus tallies steps per status across the whole tree.
func (r *Roadmap) CountByStatus() map[StepStatus]int {
	counts := make(map[StepStatus]int)
	r.Walk(func(s *Step, _ int) bool {
		counts[s.Status]++
		return true
	})
	return counts
}

// Hash returns a deterministic hash of the roadmap structure and statuses,
// used to suppress no-op reloads in watch mode.
func (r *Roadmap) Hash() string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%s:%s", r.ID, r.Title)
	r.Walk(func(s *Step, depth int) bool {
		_, _ = fmt.Fprintf(h, "%d:%s:%s:%s:%s", depth, s.ID, s.Title, s.Type, s.Status)
		return true
	})
	return hex.EncodeToString(h.Sum(nil))
}

// Validate checks the roadmap for structural integrity. It returns every
// problem found rather than stopping at the first.
func (r *Roadmap) Validate() []error {
	var errs []error
	if r.ID == "" {
		errs = append(errs, fmt.Errorf("roadmap ID is required"))
	}
	if r.Title == "" {
		errs = append(errs, fmt.Errorf("roadmap Title is required"))
	}

	seen := make(map[string]bool)
	r.Walk(func(s *Step, _ int) bool {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("step %q missing ID", s.Title))
			return true
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate step ID: %s", s.ID))
		}
		seen[s.ID] = true
		if s.Title == "" {
			errs = append(errs, fmt.Errorf("step %s missing title", s.ID))
		}
		if s.Type == TypeQuiz && s.Quiz != nil {
			for i, q := range s.Quiz.Questions {
				if q.ID == "" {
					errs = append(errs, fmt.Errorf("step %s question at index %d missing ID", s.ID, i))
				}
				if len(q.CorrectOptionKeys) == 0 {
					errs = append(errs, fmt.Errorf("step %s question %s has no correct options", s.ID, q.ID))
				}
			}
		}
		return true
	})
	return errs
}
