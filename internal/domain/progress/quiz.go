package progress

import (
	"time"

	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

// DefaultPassScore is the fraction of correct answers needed to pass a quiz
// when the quiz does not declare its own threshold.
const DefaultPassScore = 0.7

// ScoreQuiz grades a set of answers against a quiz. A question counts as
// correct only when the selected keys equal the correct keys, order
// ignored. A quiz with no questions scores zero.
func ScoreQuiz(quiz *roadmap.Quiz, answers map[string][]string) *QuizAttempt {
	attempt := &QuizAttempt{
		Answers:     answers,
		CompletedAt: time.Now(),
	}
	if quiz == nil || len(quiz.Questions) == 0 {
		return attempt
	}

	correct := 0
	for _, q := range quiz.Questions {
		if sameKeySet(answers[q.ID], q.CorrectOptionKeys) {
			correct++
		}
	}
	attempt.Score = float64(correct) / float64(len(quiz.Questions))

	passScore := quiz.PassScore
	if passScore <= 0 {
		passScore = DefaultPassScore
	}
	attempt.Passed = attempt.Score >= passScore
	return attempt
}

// QuizPoints computes the points earned for an attempt: the step's reward
// plus a small score bonus on a pass, or half-rate partial credit on a fail
// with a non-zero score.
func QuizPoints(reward int, attempt *QuizAttempt) int {
	switch {
	case attempt.Passed:
		return reward + int(attempt.Score*5)
	case attempt.Score > 0:
		return int(attempt.Score * float64(reward) * 0.5)
	default:
		return 0
	}
}

// SubmissionPoints returns the points granted immediately on assignment
// hand-in: a quarter of the reward.
func SubmissionPoints(reward int) int {
	return reward / 4
}

// GradingPoints returns the points granted when a submission is graded as
// passed: the reward minus what the hand-in already paid, plus a ten percent
// bonus for grades of 0.9 and above.
func GradingPoints(reward int, grade *float64) int {
	points := reward - SubmissionPoints(reward)
	if grade != nil && *grade >= 0.9 {
		points += reward / 10
	}
	return points
}

func sameKeySet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, k := range a {
		set[k] = true
	}
	if len(set) != len(b) {
		return false
	}
	for _, k := range b {
		if !set[k] {
			return false
		}
	}
	return true
}
