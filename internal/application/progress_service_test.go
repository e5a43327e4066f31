package application

import (
	"testing"

	"github.com/skilltrail/skilltrail/internal/domain/events"
	"github.com/skilltrail/skilltrail/internal/domain/gamification"
	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

func TestTransitionStartToComplete(t *testing.T) {
	svc, repo, logger := newProgressFixture(quizRoadmap())

	status, err := svc.TransitionStep("lesson-1", roadmap.EventStart, "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if status != roadmap.StatusInProgress {
		t.Fatalf("status = %s, want in_progress", status)
	}

	status, err = svc.TransitionStep("lesson-1", roadmap.EventComplete, "notes.md")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if status != roadmap.StatusCompleted {
		t.Fatalf("status = %s, want completed", status)
	}

	result := repo.state.StepResults["lesson-1"]
	if result.Attempts != 1 || result.StartedAt == nil || result.CompletedAt == nil {
		t.Errorf("result = %+v", result)
	}
	if len(result.Evidence) != 1 || result.Evidence[0] != "notes.md" {
		t.Errorf("evidence = %v", result.Evidence)
	}

	if !logger.has(events.TypeStepStarted) || !logger.has(events.TypeStepCompleted) {
		t.Errorf("events logged: %v", logger.typesLogged())
	}
	if repo.profile.Points < 10 {
		t.Errorf("points = %d, want at least the step reward", repo.profile.Points)
	}
	if !repo.profile.HasBadge(gamification.BadgeFirstSteps) {
		t.Error("first completion should award First Steps")
	}
}

func TestTransitionUnknownStep(t *testing.T) {
	svc, _, _ := newProgressFixture(quizRoadmap())
	if _, err := svc.TransitionStep("ghost", roadmap.EventStart, ""); err == nil {
		t.Error("transitioning a missing step should fail")
	}
}

func TestTransitionInvalidEventKeepsState(t *testing.T) {
	svc, repo, _ := newProgressFixture(quizRoadmap())

	if _, err := svc.TransitionStep("lesson-1", roadmap.EventComplete, ""); err == nil {
		t.Error("completing an unlocked step without starting should fail")
	}
	if _, ok := repo.state.StepResults["lesson-1"]; ok {
		t.Error("failed transition must not record a result")
	}
}

func TestAncestorGuardBlocksLockedSubtree(t *testing.T) {
	svc, _, _ := newProgressFixture(quizRoadmap())

	// lesson-2 sits under the locked mod-2; unlocking the leaf alone is refused.
	if _, err := svc.TransitionStep("lesson-2", roadmap.EventUnlock, ""); err == nil {
		t.Fatal("unlock under a locked module should fail")
	}

	if _, err := svc.TransitionStep("mod-2", roadmap.EventUnlock, ""); err != nil {
		t.Fatalf("unlocking the module itself: %v", err)
	}
	if _, err := svc.TransitionStep("lesson-2", roadmap.EventUnlock, ""); err != nil {
		t.Errorf("unlock after parent unlocked: %v", err)
	}
}

func TestModuleCompletionBonus(t *testing.T) {
	rm := quizRoadmap()
	rm.Steps[0].Status = roadmap.StatusInProgress
	svc, repo, _ := newProgressFixture(rm)

	if _, err := svc.TransitionStep("mod-1", roadmap.EventComplete, ""); err != nil {
		t.Fatal(err)
	}
	// Modules pay their own points plus the completion bonus.
	if repo.profile.Points < moduleCompletionBonus {
		t.Errorf("points = %d, want at least the module bonus", repo.profile.Points)
	}
}

func TestSubmitQuizPass(t *testing.T) {
	svc, repo, logger := newProgressFixture(quizRoadmap())

	attempt, err := svc.SubmitQuiz("quiz-1", map[string][]string{"q1": {"a"}, "q2": {"b"}})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if !attempt.Passed || attempt.Score != 1.0 {
		t.Fatalf("attempt = %+v", attempt)
	}

	if repo.state.StepResults["quiz-1"].Status != roadmap.StatusCompleted {
		t.Error("passing a quiz should complete the step")
	}
	if !repo.profile.HasBadge(gamification.BadgeQuizTaker) || !repo.profile.HasBadge(gamification.BadgePerfectScore) {
		t.Errorf("badges = %v", repo.profile.Badges)
	}
	if !logger.has(events.TypeQuizSubmitted) {
		t.Errorf("events logged: %v", logger.typesLogged())
	}
	// reward 10 + perfect-score bonus 5
	if repo.profile.Points < 15 {
		t.Errorf("points = %d, want at least 15", repo.profile.Points)
	}
}

func TestSubmitQuizFail(t *testing.T) {
	svc, repo, _ := newProgressFixture(quizRoadmap())

	attempt, err := svc.SubmitQuiz("quiz-1", map[string][]string{"q1": {"a"}, "q2": {"x"}})
	if err != nil {
		t.Fatal(err)
	}
	if attempt.Passed {
		t.Fatal("half right must not pass at 0.7")
	}
	if repo.state.StepResults["quiz-1"].Status != roadmap.StatusFailed {
		t.Error("failing a quiz should mark the step failed")
	}
	if repo.profile.HasBadge(gamification.BadgeQuizTaker) {
		t.Error("failed quiz must not award Quiz Taker")
	}
}

func TestSubmitQuizGuards(t *testing.T) {
	svc, _, _ := newProgressFixture(quizRoadmap())

	if _, err := svc.SubmitQuiz("lesson-1", nil); err == nil {
		t.Error("submitting answers to a lesson should fail")
	}

	rm := quizRoadmap()
	rm.Steps[0].Children[1].Status = roadmap.StatusLocked
	svc, _, _ = newProgressFixture(rm)
	if _, err := svc.SubmitQuiz("quiz-1", map[string][]string{"q1": {"a"}}); err == nil {
		t.Error("submitting a locked quiz should fail")
	}
}

func TestAssignmentSubmitAndGrade(t *testing.T) {
	svc, repo, logger := newProgressFixture(quizRoadmap())

	submission, err := svc.SubmitAssignment("hw-1", "my solution")
	if err != nil {
		t.Fatalf("SubmitAssignment: %v", err)
	}
	if submission.Status != "submitted" {
		t.Errorf("submission status = %q", submission.Status)
	}
	if repo.state.StepResults["hw-1"].Status != roadmap.StatusInProgress {
		t.Error("submitting should move the step to in_progress")
	}
	// Submission pays a quarter of the 20-point reward up front.
	if repo.profile.Points < 5 {
		t.Errorf("points after submit = %d, want at least 5", repo.profile.Points)
	}

	grade := 0.95
	graded, err := svc.GradeAssignment("hw-1", "passed", &grade, "well done")
	if err != nil {
		t.Fatalf("GradeAssignment: %v", err)
	}
	if graded.GradedAt == nil || graded.Feedback != "well done" {
		t.Errorf("graded = %+v", graded)
	}
	if repo.state.StepResults["hw-1"].Status != roadmap.StatusCompleted {
		t.Error("a passed grade should complete the step")
	}
	if !repo.profile.HasBadge(gamification.BadgeAssignmentComplete) {
		t.Errorf("badges = %v", repo.profile.Badges)
	}
	if !logger.has(events.TypeAssignmentSubmitted) || !logger.has(events.TypeAssignmentGraded) {
		t.Errorf("events logged: %v", logger.typesLogged())
	}
}

func TestGradeAssignmentRejected(t *testing.T) {
	svc, repo, _ := newProgressFixture(quizRoadmap())

	if _, err := svc.SubmitAssignment("hw-1", "weak attempt"); err != nil {
		t.Fatal(err)
	}
	pointsAfterSubmit := repo.profile.Points

	if _, err := svc.GradeAssignment("hw-1", "rejected", nil, "try again"); err != nil {
		t.Fatal(err)
	}
	if repo.state.StepResults["hw-1"].Status != roadmap.StatusFailed {
		t.Error("a rejected grade should fail the step")
	}
	if repo.profile.Points != pointsAfterSubmit {
		t.Error("a rejection must not pay the remaining reward")
	}
}

func TestGradeAssignmentValidation(t *testing.T) {
	svc, _, _ := newProgressFixture(quizRoadmap())

	if _, err := svc.GradeAssignment("hw-1", "amazing", nil, ""); err == nil {
		t.Error("unknown grading status should fail")
	}
	if _, err := svc.GradeAssignment("hw-1", "passed", nil, ""); err == nil {
		t.Error("grading without a submission should fail")
	}
}

func TestTopMarksBadge(t *testing.T) {
	svc, repo, _ := newProgressFixture(quizRoadmap())

	_, _ = svc.SubmitAssignment("hw-1", "flawless")
	perfect := 1.0
	if _, err := svc.GradeAssignment("hw-1", "passed", &perfect, ""); err != nil {
		t.Fatal(err)
	}
	if !repo.profile.HasBadge(gamification.BadgeTopMarks) {
		t.Errorf("badges = %v", repo.profile.Badges)
	}
}

func TestSummarize(t *testing.T) {
	svc, _, _ := newProgressFixture(quizRoadmap())

	_, _ = svc.TransitionStep("lesson-1", roadmap.EventStart, "")
	_, _ = svc.TransitionStep("lesson-1", roadmap.EventComplete, "")

	summary, err := svc.Summarize()
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalSteps != 6 {
		t.Errorf("TotalSteps = %d, want 6", summary.TotalSteps)
	}
	if summary.Completed != 1 {
		t.Errorf("Completed = %d, want 1", summary.Completed)
	}
	if summary.StatusCounts[roadmap.StatusCompleted] != 1 {
		t.Errorf("status counts = %v", summary.StatusCounts)
	}
	if summary.Profile == nil || summary.Profile.Points == 0 {
		t.Error("summary should carry the gamification profile")
	}
}
