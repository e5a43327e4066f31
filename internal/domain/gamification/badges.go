package gamification

// Badge is an achievement a learner can earn once.
type Badge struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

// Built-in badge names referenced by the progress rules.
const (
	BadgeFirstSteps         = "First Steps"
	BadgeQuizTaker          = "Quiz Taker"
	BadgePerfectScore       = "Perfect Score"
	BadgeAssignmentComplete = "Assignment Complete"
	BadgeTopMarks           = "Top Marks"
	BadgeStreakWeek         = "Streak Week"
)

// Catalog is the fixed badge catalog.
var Catalog = []Badge{
	{Name: BadgeFirstSteps, Description: "Complete your first step", Category: "progress"},
	{Name: BadgeQuizTaker, Description: "Pass a quiz", Category: "quiz"},
	{Name: BadgePerfectScore, Description: "Score 100% on a quiz", Category: "quiz"},
	{Name: BadgeAssignmentComplete, Description: "Pass a graded assignment", Category: "assignment"},
	{Name: BadgeTopMarks, Description: "Earn a perfect assignment grade", Category: "assignment"},
	{Name: BadgeStreakWeek, Description: "Stay active seven days in a row", Category: "streak"},
}

// FindBadge looks a badge up by name in the catalog.
func FindBadge(name string) *Badge {
	for i := range Catalog {
		if Catalog[i].Name == name {
			return &Catalog[i]
		}
	}
	return nil
}
