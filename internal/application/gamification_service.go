package application

import (
	"time"

	"github.com/skilltrail/skilltrail/internal/domain"
	"github.com/skilltrail/skilltrail/internal/domain/events"
	"github.com/skilltrail/skilltrail/internal/domain/gamification"
)

// GamificationService applies the points, badge, and streak rules and
// records the resulting events. It mutates profiles in memory; callers
// persist them.
type GamificationService struct {
	activity domain.ActivityLogger
	levels   []gamification.Level
	now      func() time.Time
}

func NewGamificationService(activity domain.ActivityLogger) *GamificationService {
	return &GamificationService{
		activity: activity,
		levels:   gamification.DefaultLevels,
		now:      time.Now,
	}
}

// AwardPoints adds points to the profile and records the award. A level-up
// gets its own event. Zero or negative amounts are no-ops.
func (s *GamificationService) AwardPoints(profile *gamification.Profile, points int, reason string) {
	if points <= 0 {
		return
	}

	newLevel := profile.AddPoints(s.levels, points)

	if s.activity != nil {
		_ = s.activity.Log(events.TypePointsAwarded, "", map[string]interface{}{
			"points": points,
			"reason": reason,
			"total":  profile.Points,
		})
	}

	if newLevel != nil && s.activity != nil {
		_ = s.activity.Log(events.TypeLevelUp, "", map[string]interface{}{
			"level":      newLevel.Name,
			"min_points": newLevel.MinPoints,
		})
	}
}

// CheckAndAwardBadge awards a catalog badge once. It reports whether the
// badge was newly awarded.
func (s *GamificationService) CheckAndAwardBadge(profile *gamification.Profile, name string) bool {
	if profile.HasBadge(name) {
		return false
	}
	badge := gamification.FindBadge(name)
	if badge == nil {
		return false
	}

	profile.Badges = append(profile.Badges, badge.Name)

	if s.activity != nil {
		_ = s.activity.Log(events.TypeBadgeEarned, badge.Name, map[string]interface{}{
			"category":    badge.Category,
			"description": badge.Description,
		})
	}
	return true
}

// UpdateDailyStreak counts today's activity toward the streak, awarding the
// streak bonus and the week badge when earned. Safe to call on every
// completed activity; only the first call per day changes anything.
func (s *GamificationService) UpdateDailyStreak(profile *gamification.Profile) {
	update := profile.Streak.Touch(s.now())
	if !update.Changed {
		return
	}

	if s.activity != nil {
		_ = s.activity.Log(events.TypeStreakUpdated, "", map[string]interface{}{
			"current":   profile.Streak.Current,
			"longest":   profile.Streak.Longest,
			"continued": update.Continued,
		})
	}

	reason := "daily activity"
	if update.Continued {
		reason = "daily streak bonus"
	}
	s.AwardPoints(profile, update.BonusPoints, reason)

	if profile.Streak.Current >= 7 {
		s.CheckAndAwardBadge(profile, gamification.BadgeStreakWeek)
	}
}
