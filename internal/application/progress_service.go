package application

import (
	"fmt"
	"time"

	"github.com/skilltrail/skilltrail/internal/domain"
	"github.com/skilltrail/skilltrail/internal/domain/events"
	"github.com/skilltrail/skilltrail/internal/domain/gamification"
	"github.com/skilltrail/skilltrail/internal/domain/progress"
	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

// Default rewards applied when a step declares no points of its own,
// matching the platform's seed values.
const (
	defaultQuizReward       = 5
	defaultAssignmentReward = 10
	moduleCompletionBonus   = 5
)

// ProgressService drives step lifecycle transitions and the quiz and
// assignment flows, applying gamification side effects.
type ProgressService struct {
	repo     domain.WorkspaceRepository
	activity domain.ActivityLogger
	gamify   *GamificationService
}

func NewProgressService(repo domain.WorkspaceRepository, activity domain.ActivityLogger, gamify *GamificationService) *ProgressService {
	return &ProgressService{repo: repo, activity: activity, gamify: gamify}
}

// workspaceView bundles the three artifacts most operations touch.
type workspaceView struct {
	roadmap *roadmap.Roadmap
	state   *progress.State
	profile *gamification.Profile
}

func (s *ProgressService) load() (*workspaceView, error) {
	rm, err := s.repo.LoadRoadmap()
	if err != nil {
		return nil, err
	}
	state, err := s.repo.LoadProgress()
	if err != nil {
		return nil, err
	}
	if state.RoadmapID == "" {
		state.RoadmapID = rm.ID
	}
	profile, err := s.repo.LoadProfile()
	if err != nil {
		return nil, err
	}
	return &workspaceView{roadmap: rm, state: state, profile: profile}, nil
}

func (s *ProgressService) save(view *workspaceView) error {
	view.state.UpdatedAt = time.Now()
	if err := s.repo.SaveProgress(view.state); err != nil {
		return err
	}
	return s.repo.SaveProfile(view.profile)
}

// ancestorGuard refuses unlocking transitions while any ancestor container
// is still locked. Rendering is unaffected; this only gates local changes.
func (s *ProgressService) ancestorGuard(view *workspaceView) func(string, string) bool {
	return func(stepID, event string) bool {
		switch event {
		case roadmap.EventStart, roadmap.EventUnlock, roadmap.EventRetry:
		default:
			return true
		}
		path := view.roadmap.PathTo(stepID)
		if len(path) == 0 {
			return true
		}
		for _, ancestor := range path[:len(path)-1] {
			if view.state.StatusOf(ancestor) == roadmap.StatusLocked {
				return false
			}
		}
		return true
	}
}

// TransitionStep applies a lifecycle event (start, complete, fail, retry,
// reset, unlock, lock, stop) to a step and records the outcome.
func (s *ProgressService) TransitionStep(stepID, event, evidence string) (roadmap.StepStatus, error) {
	view, err := s.load()
	if err != nil {
		return "", err
	}

	step := view.roadmap.FindStep(stepID)
	if step == nil {
		return "", fmt.Errorf("step not found in roadmap: %s", stepID)
	}

	current := view.state.StatusOf(step)
	sm, err := roadmap.NewStepStateMachine(current, stepID, s.ancestorGuard(view))
	if err != nil {
		return "", err
	}
	if err := sm.Transition(event); err != nil {
		return "", err
	}
	next := sm.Current()

	result := view.state.StepResults[stepID]
	result.Status = next

	now := time.Now()
	switch event {
	case roadmap.EventStart, roadmap.EventRetry:
		result.StartedAt = &now
		result.Attempts++
	case roadmap.EventComplete:
		result.CompletedAt = &now
	}
	if evidence != "" {
		result.Evidence = append(result.Evidence, evidence)
	}
	view.state.StepResults[stepID] = result

	switch event {
	case roadmap.EventStart:
		_ = s.activity.Log(events.TypeStepStarted, stepID, map[string]interface{}{
			"title": step.Title,
		})
	case roadmap.EventFail:
		_ = s.activity.Log(events.TypeStepFailed, stepID, map[string]interface{}{
			"title": step.Title,
		})
	case roadmap.EventComplete:
		s.onStepCompleted(view, step)
	}

	if err := s.save(view); err != nil {
		return "", err
	}
	return next, nil
}

func (s *ProgressService) onStepCompleted(view *workspaceView, step *roadmap.Step) {
	_ = s.activity.Log(events.TypeStepCompleted, step.ID, map[string]interface{}{
		"title": step.Title,
		"type":  string(step.Type),
	})

	points := step.Points
	if step.Type == roadmap.TypeModule {
		points += moduleCompletionBonus
	}
	s.gamify.AwardPoints(view.profile, points, fmt.Sprintf("step completed: %s", step.Title))
	s.gamify.UpdateDailyStreak(view.profile)

	if view.state.CompletedCount(view.roadmap) >= 1 {
		s.gamify.CheckAndAwardBadge(view.profile, gamification.BadgeFirstSteps)
	}
}

// SubmitQuiz grades the answers for a quiz step, records the attempt, and
// moves the step to completed or failed.
func (s *ProgressService) SubmitQuiz(stepID string, answers map[string][]string) (*progress.QuizAttempt, error) {
	view, err := s.load()
	if err != nil {
		return nil, err
	}

	step := view.roadmap.FindStep(stepID)
	if step == nil {
		return nil, fmt.Errorf("step not found in roadmap: %s", stepID)
	}
	if step.Type != roadmap.TypeQuiz {
		return nil, fmt.Errorf("step %s is not a quiz", stepID)
	}
	if step.Quiz == nil || len(step.Quiz.Questions) == 0 {
		return nil, fmt.Errorf("quiz %s has no questions", stepID)
	}
	if view.state.StatusOf(step) == roadmap.StatusLocked {
		return nil, fmt.Errorf("quiz %s is locked", stepID)
	}

	attempt := progress.ScoreQuiz(step.Quiz, answers)

	result := view.state.StepResults[stepID]
	result.Attempts++
	result.QuizAttempt = attempt
	if attempt.Passed {
		result.Status = roadmap.StatusCompleted
		result.CompletedAt = &attempt.CompletedAt
	} else {
		result.Status = roadmap.StatusFailed
	}
	view.state.StepResults[stepID] = result

	_ = s.activity.Log(events.TypeQuizSubmitted, stepID, map[string]interface{}{
		"score":  attempt.Score,
		"passed": attempt.Passed,
	})

	reward := step.Points
	if reward == 0 {
		reward = defaultQuizReward
	}
	s.gamify.AwardPoints(view.profile, progress.QuizPoints(reward, attempt),
		fmt.Sprintf("quiz submitted: %s", step.Title))
	s.gamify.UpdateDailyStreak(view.profile)

	if attempt.Passed {
		s.gamify.CheckAndAwardBadge(view.profile, gamification.BadgeQuizTaker)
		if attempt.Score == 1.0 {
			s.gamify.CheckAndAwardBadge(view.profile, gamification.BadgePerfectScore)
		}
	}

	if err := s.save(view); err != nil {
		return nil, err
	}
	return attempt, nil
}

// SubmitAssignment records a hand-in for an assignment step. Submission
// pays a quarter of the reward up front; grading pays the rest.
func (s *ProgressService) SubmitAssignment(stepID, content string) (*progress.AssignmentSubmission, error) {
	view, err := s.load()
	if err != nil {
		return nil, err
	}

	step := view.roadmap.FindStep(stepID)
	if step == nil {
		return nil, fmt.Errorf("step not found in roadmap: %s", stepID)
	}
	if step.Type != roadmap.TypeAssignment {
		return nil, fmt.Errorf("step %s is not an assignment", stepID)
	}
	if view.state.StatusOf(step) == roadmap.StatusLocked {
		return nil, fmt.Errorf("assignment %s is locked", stepID)
	}

	submission := &progress.AssignmentSubmission{
		Content:     content,
		Status:      progress.SubmissionSubmitted,
		SubmittedAt: time.Now(),
	}

	result := view.state.StepResults[stepID]
	result.Attempts++
	result.Submission = submission
	result.Status = roadmap.StatusInProgress
	view.state.StepResults[stepID] = result

	_ = s.activity.Log(events.TypeAssignmentSubmitted, stepID, map[string]interface{}{
		"title": step.Title,
	})

	reward := step.Points
	if reward == 0 {
		reward = defaultAssignmentReward
	}
	s.gamify.AwardPoints(view.profile, progress.SubmissionPoints(reward),
		fmt.Sprintf("assignment submitted: %s", step.Title))
	s.gamify.UpdateDailyStreak(view.profile)

	if err := s.save(view); err != nil {
		return nil, err
	}
	return submission, nil
}

// GradeAssignment updates a submission with grading information. A passed
// grade completes the step and pays the remaining reward.
func (s *ProgressService) GradeAssignment(stepID, status string, grade *float64, feedback string) (*progress.AssignmentSubmission, error) {
	if status != progress.SubmissionPassed && status != progress.SubmissionRejected {
		return nil, fmt.Errorf("invalid grading status: %q (valid: passed, rejected)", status)
	}

	view, err := s.load()
	if err != nil {
		return nil, err
	}

	step := view.roadmap.FindStep(stepID)
	if step == nil {
		return nil, fmt.Errorf("step not found in roadmap: %s", stepID)
	}

	result, ok := view.state.StepResults[stepID]
	if !ok || result.Submission == nil {
		return nil, fmt.Errorf("no submission found for step %s", stepID)
	}

	now := time.Now()
	result.Submission.Status = status
	result.Submission.Grade = grade
	result.Submission.Feedback = feedback
	result.Submission.GradedAt = &now

	if status == progress.SubmissionPassed {
		result.Status = roadmap.StatusCompleted
		result.CompletedAt = &now
	} else {
		result.Status = roadmap.StatusFailed
	}
	view.state.StepResults[stepID] = result

	meta := map[string]interface{}{"status": status}
	if grade != nil {
		meta["grade"] = *grade
	}
	_ = s.activity.Log(events.TypeAssignmentGraded, stepID, meta)

	if status == progress.SubmissionPassed {
		reward := step.Points
		if reward == 0 {
			reward = defaultAssignmentReward
		}
		s.gamify.AwardPoints(view.profile, progress.GradingPoints(reward, grade),
			fmt.Sprintf("assignment passed: %s", step.Title))
		s.gamify.CheckAndAwardBadge(view.profile, gamification.BadgeAssignmentComplete)
		if grade != nil && *grade == 1.0 {
			s.gamify.CheckAndAwardBadge(view.profile, gamification.BadgeTopMarks)
		}
	}

	if err := s.save(view); err != nil {
		return nil, err
	}
	return result.Submission, nil
}

// Summary is the aggregate view shown by the status command and the web
// dashboard.
type Summary struct {
	RoadmapID    string                        `json:"roadmap_id"`
	Title        string                        `json:"title"`
	TotalSteps   int                           `json:"total_steps"`
	Completed    int                           `json:"completed"`
	Progress     float64                       `json:"progress"` // percent
	StatusCounts map[roadmap.StepStatus]int    `json:"status_counts"`
	Profile      *gamification.Profile         `json:"profile"`
	Results      map[string]progress.StepResult `json:"results,omitempty"`
}

// Summarize computes the learner's overall standing on the roadmap.
func (s *ProgressService) Summarize() (*Summary, error) {
	view, err := s.load()
	if err != nil {
		return nil, err
	}

	merged := *view.roadmap
	view.state.Apply(&merged)

	total := merged.TotalSteps()
	completed := view.state.CompletedCount(view.roadmap)
	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total) * 100
	}

	return &Summary{
		RoadmapID:    merged.ID,
		Title:        merged.Title,
		TotalSteps:   total,
		Completed:    completed,
		Progress:     pct,
		StatusCounts: merged.CountByStatus(),
		Profile:      view.profile,
		Results:      view.state.StepResults,
	}, nil
}
