// Package progress tracks a learner's per-step progress over a roadmap.
// The authored roadmap stays read-only; progress overrides live here.
package progress

import (
	"time"

	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

// State is the learner's progress across one roadmap.
type State struct {
	RoadmapID   string                `json:"roadmap_id"`
	StepResults map[string]StepResult `json:"step_results"` // StepID -> Result
	UpdatedAt   time.Time             `json:"updated_at"`
}

// StepResult captures progress on a single step.
type StepResult struct {
	Status      roadmap.StepStatus     `json:"status"`
	StartedAt   *time.Time             `json:"started_at,omitempty"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	Attempts    int                    `json:"attempts,omitempty"`
	Evidence    []string               `json:"evidence,omitempty"`
	QuizAttempt *QuizAttempt           `json:"quiz_attempt,omitempty"`
	Submission  *AssignmentSubmission  `json:"submission,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// QuizAttempt is the most recent quiz submission for a step.
type QuizAttempt struct {
	Answers     map[string][]string `json:"answers"` // QuestionID -> selected option keys
	Score       float64             `json:"score"`
	Passed      bool                `json:"passed"`
	CompletedAt time.Time           `json:"completed_at"`
}

// Submission statuses for assignments.
const (
	SubmissionSubmitted = "submitted"
	SubmissionPassed    = "passed"
	SubmissionRejected  = "rejected"
)

// AssignmentSubmission is the learner's latest assignment hand-in.
type AssignmentSubmission struct {
	Content     string     `json:"content,omitempty"`
	Status      string     `json:"status"`
	Grade       *float64   `json:"grade,omitempty"` // 0.0 - 1.0
	Feedback    string     `json:"feedback,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	GradedAt    *time.Time `json:"graded_at,omitempty"`
}

// NewState creates empty progress for a roadmap.
func NewState(roadmapID string) *State {
	return &State{
		RoadmapID:   roadmapID,
		StepResults: make(map[string]StepResult),
		UpdatedAt:   time.Now(),
	}
}

// StatusOf returns the effective status of a step: the progress override if
// one exists, otherwise the status authored in the roadmap.
func (s *State) StatusOf(step *roadmap.Step) roadmap.StepStatus {
	if s != nil {
		if res, ok := s.StepResults[step.ID]; ok {
			return res.Status
		}
	}
	return step.Status
}

// Apply copies the effective statuses onto a roadmap tree in place, so
// renderers see a single merged view.
func (s *State) Apply(r *roadmap.Roadmap) {
	if s == nil {
		return
	}
	r.Walk(func(step *roadmap.Step, _ int) bool {
		if res, ok := s.StepResults[step.ID]; ok {
			step.Status = res.Status
		}
		return true
	})
}

// CompletedCount counts steps whose effective status is completed.
func (s *State) CompletedCount(r *roadmap.Roadmap) int {
	count := 0
	r.Walk(func(step *roadmap.Step, _ int) bool {
		if s.StatusOf(step).IsComplete() {
			count++
		}
		return true
	})
	return count
}
