// Package gamification holds the points, level, badge, and streak rules for
// a learner.
package gamification

// Level is a named rank reached at a minimum point total.
type Level struct {
	Name      string `json:"name" yaml:"name"`
	MinPoints int    `json:"min_points" yaml:"min_points"`
}

// DefaultLevels is the built-in ladder, ordered by ascending MinPoints.
var DefaultLevels = []Level{
	{Name: "Novice", MinPoints: 0},
	{Name: "Apprentice", MinPoints: 50},
	{Name: "Journeyman", MinPoints: 150},
	{Name: "Expert", MinPoints: 400},
	{Name: "Master", MinPoints: 1000},
}

// LevelForPoints returns the highest level whose MinPoints the total meets.
// Levels must be ordered by ascending MinPoints. An empty ladder yields a
// zero Level.
func LevelForPoints(levels []Level, points int) Level {
	var current Level
	for _, l := range levels {
		if points >= l.MinPoints {
			current = l
		}
	}
	return current
}

// Profile is the learner's gamification state, persisted as a whole.
type Profile struct {
	Points    int      `json:"points"`
	LevelName string   `json:"level_name"`
	Badges    []string `json:"badges,omitempty"` // badge names, award order
	Streak    Streak   `json:"streak"`
}

// HasBadge reports whether the badge has already been awarded.
func (p *Profile) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// AddPoints increases the point total and returns the new level if the
// change crossed a level boundary, or nil otherwise. Zero or negative
// amounts are ignored.
func (p *Profile) AddPoints(levels []Level, amount int) *Level {
	if amount <= 0 {
		return nil
	}
	before := LevelForPoints(levels, p.Points)
	p.Points += amount
	after := LevelForPoints(levels, p.Points)
	p.LevelName = after.Name

	if after.Name != before.Name && after.MinPoints > before.MinPoints {
		return &after
	}
	return nil
}
