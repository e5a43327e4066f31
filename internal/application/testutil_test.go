package application

import (
	"github.com/skilltrail/skilltrail/internal/domain/events"
	"github.com/skilltrail/skilltrail/internal/domain/gamification"
	"github.com/skilltrail/skilltrail/internal/domain/progress"
	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

// memRepo is an in-memory WorkspaceRepository for service tests.
type memRepo struct {
	roadmap *roadmap.Roadmap
	state   *progress.State
	profile *gamification.Profile
}

func newMemRepo(rm *roadmap.Roadmap) *memRepo {
	return &memRepo{
		roadmap: rm,
		state:   progress.NewState(""),
		profile: &gamification.Profile{LevelName: "Novice"},
	}
}

func (m *memRepo) Initialize() error    { return nil }
func (m *memRepo) IsInitialized() bool  { return true }

func (m *memRepo) SaveRoadmap(rm *roadmap.Roadmap) error { m.roadmap = rm; return nil }
func (m *memRepo) LoadRoadmap() (*roadmap.Roadmap, error) {
	if m.roadmap == nil {
		return nil, errNoRoadmap
	}
	copied := *m.roadmap
	return &copied, nil
}

func (m *memRepo) SaveProgress(state *progress.State) error { m.state = state; return nil }
func (m *memRepo) LoadProgress() (*progress.State, error)   { return m.state, nil }

func (m *memRepo) SaveProfile(p *gamification.Profile) error { m.profile = p; return nil }
func (m *memRepo) LoadProfile() (*gamification.Profile, error) { return m.profile, nil }

var errNoRoadmap = &notFoundError{}

type notFoundError struct{}

func (*notFoundError) Error() string { return "roadmap not found" }

// memLogger records activity events in memory.
type memLogger struct {
	logged []events.BaseEvent
}

func (l *memLogger) Log(eventType, aggregateID string, metadata map[string]interface{}) error {
	l.logged = append(l.logged, events.BaseEvent{
		Type:        eventType,
		AggregateID: aggregateID,
		Metadata:    metadata,
	})
	return nil
}

func (l *memLogger) typesLogged() []string {
	var out []string
	for _, e := range l.logged {
		out = append(out, e.Type)
	}
	return out
}

func (l *memLogger) has(eventType string) bool {
	for _, e := range l.logged {
		if e.Type == eventType {
			return true
		}
	}
	return false
}

// quizRoadmap builds a roadmap exercising every step type used by the
// progress flows.
func quizRoadmap() *roadmap.Roadmap {
	return &roadmap.Roadmap{
		ID:    "trail",
		Title: "Trail",
		Steps: []roadmap.Step{
			{
				ID: "mod-1", Title: "Module One", Type: roadmap.TypeModule, Status: roadmap.StatusUnlocked,
				Children: []roadmap.Step{
					{ID: "lesson-1", Title: "Lesson", Type: roadmap.TypeLesson, Status: roadmap.StatusUnlocked, Points: 10},
					{ID: "quiz-1", Title: "Quiz", Type: roadmap.TypeQuiz, Status: roadmap.StatusUnlocked, Points: 10,
						Quiz: &roadmap.Quiz{Questions: []roadmap.Question{
							{ID: "q1", CorrectOptionKeys: []string{"a"}},
							{ID: "q2", CorrectOptionKeys: []string{"b"}},
						}},
					},
					{ID: "hw-1", Title: "Homework", Type: roadmap.TypeAssignment, Status: roadmap.StatusUnlocked, Points: 20},
				},
			},
			{
				ID: "mod-2", Title: "Module Two", Type: roadmap.TypeModule, Status: roadmap.StatusLocked,
				Children: []roadmap.Step{
					{ID: "lesson-2", Title: "Locked Lesson", Type: roadmap.TypeLesson, Status: roadmap.StatusLocked},
				},
			},
		},
	}
}

func newProgressFixture(rm *roadmap.Roadmap) (*ProgressService, *memRepo, *memLogger) {
	repo := newMemRepo(rm)
	logger := &memLogger{}
	gamify := NewGamificationService(logger)
	return NewProgressService(repo, logger, gamify), repo, logger
}
