package progress

import (
	"testing"

	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

func threeQuestionQuiz() *roadmap.Quiz {
	return &roadmap.Quiz{
		Questions: []roadmap.Question{
			{ID: "q1", CorrectOptionKeys: []string{"a"}},
			{ID: "q2", CorrectOptionKeys: []string{"b", "c"}},
			{ID: "q3", CorrectOptionKeys: []string{"d"}},
		},
	}
}

func TestScoreQuizAllCorrect(t *testing.T) {
	attempt := ScoreQuiz(threeQuestionQuiz(), map[string][]string{
		"q1": {"a"},
		"q2": {"c", "b"}, // order must not matter
		"q3": {"d"},
	})
	if attempt.Score != 1.0 || !attempt.Passed {
		t.Errorf("score = %v passed = %v", attempt.Score, attempt.Passed)
	}
}

func TestScoreQuizPartialCredit(t *testing.T) {
	attempt := ScoreQuiz(threeQuestionQuiz(), map[string][]string{
		"q1": {"a"},
		"q2": {"b"}, // incomplete selection is wrong
		"q3": {"x"},
	})
	want := 1.0 / 3.0
	if attempt.Score != want {
		t.Errorf("score = %v, want %v", attempt.Score, want)
	}
	if attempt.Passed {
		t.Error("one of three must not pass the default 0.7 threshold")
	}
}

func TestScoreQuizPassThreshold(t *testing.T) {
	// Two of three is ~0.67, just under the default threshold.
	attempt := ScoreQuiz(threeQuestionQuiz(), map[string][]string{
		"q1": {"a"},
		"q2": {"b", "c"},
	})
	if attempt.Passed {
		t.Errorf("score %v should not pass at 0.7", attempt.Score)
	}

	quiz := threeQuestionQuiz()
	quiz.PassScore = 0.5
	attempt = ScoreQuiz(quiz, map[string][]string{
		"q1": {"a"},
		"q2": {"b", "c"},
	})
	if !attempt.Passed {
		t.Errorf("score %v should pass a 0.5 threshold", attempt.Score)
	}
}

func TestScoreQuizExtraKeysDoNotCount(t *testing.T) {
	attempt := ScoreQuiz(threeQuestionQuiz(), map[string][]string{
		"q1": {"a", "b"},
	})
	if attempt.Score != 0 {
		t.Errorf("superset answers must be wrong, score = %v", attempt.Score)
	}
}

func TestScoreQuizEmpty(t *testing.T) {
	attempt := ScoreQuiz(nil, nil)
	if attempt.Score != 0 || attempt.Passed {
		t.Errorf("nil quiz scored %v passed %v", attempt.Score, attempt.Passed)
	}
}

func TestQuizPoints(t *testing.T) {
	pass := &QuizAttempt{Score: 1.0, Passed: true}
	if got := QuizPoints(10, pass); got != 15 {
		t.Errorf("perfect pass points = %d, want 15", got)
	}

	partial := &QuizAttempt{Score: 0.8, Passed: true}
	if got := QuizPoints(10, partial); got != 14 {
		t.Errorf("0.8 pass points = %d, want 14", got)
	}

	fail := &QuizAttempt{Score: 0.4}
	if got := QuizPoints(10, fail); got != 2 {
		t.Errorf("failing partial credit = %d, want 2", got)
	}

	zero := &QuizAttempt{}
	if got := QuizPoints(10, zero); got != 0 {
		t.Errorf("zero score points = %d, want 0", got)
	}
}

func TestSubmissionAndGradingPoints(t *testing.T) {
	if got := SubmissionPoints(20); got != 5 {
		t.Errorf("submission points = %d, want 5", got)
	}

	if got := GradingPoints(20, nil); got != 15 {
		t.Errorf("ungraded pass points = %d, want 15", got)
	}

	high := 0.95
	if got := GradingPoints(20, &high); got != 17 {
		t.Errorf("high-grade points = %d, want 17", got)
	}

	low := 0.75
	if got := GradingPoints(20, &low); got != 15 {
		t.Errorf("low-grade points = %d, want 15", got)
	}
}
