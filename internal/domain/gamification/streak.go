package gamification

import "time"

const dateLayout = "2006-01-02"

// Streak tracks consecutive days with at least one completed activity.
type Streak struct {
	Current        int    `json:"current"`
	Longest        int    `json:"longest"`
	LastActiveDate string `json:"last_active_date,omitempty"` // YYYY-MM-DD
}

// StreakUpdate describes the outcome of touching the streak for a day.
type StreakUpdate struct {
	Changed     bool // false when the streak was already counted today
	Continued   bool // true when yesterday's streak carried over
	BonusPoints int
}

// Touch records activity for the given day. Same-day calls after the first
// are no-ops. Continuing from yesterday extends the streak and earns a bonus
// of one point per streak day, capped at five; any other gap resets the
// streak to one day with a single bonus point.
func (s *Streak) Touch(today time.Time) StreakUpdate {
	day := today.Format(dateLayout)
	if s.LastActiveDate == day {
		return StreakUpdate{}
	}

	yesterday := today.AddDate(0, 0, -1).Format(dateLayout)
	update := StreakUpdate{Changed: true}

	if s.LastActiveDate == yesterday {
		s.Current++
		update.Continued = true
		update.BonusPoints = s.Current
		if update.BonusPoints > 5 {
			update.BonusPoints = 5
		}
	} else {
		s.Current = 1
		update.BonusPoints = 1
	}

	s.LastActiveDate = day
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	return update
}
