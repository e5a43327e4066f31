package application

import (
	"testing"
	"time"

	"github.com/skilltrail/skilltrail/internal/domain/events"
	"github.com/skilltrail/skilltrail/internal/domain/gamification"
)

func TestAwardPointsLogsLevelUp(t *testing.T) {
	logger := &memLogger{}
	svc := NewGamificationService(logger)
	profile := &gamification.Profile{}

	svc.AwardPoints(profile, 60, "test")

	if profile.Points != 60 || profile.LevelName != "Apprentice" {
		t.Errorf("profile = %+v", profile)
	}
	if !logger.has(events.TypePointsAwarded) || !logger.has(events.TypeLevelUp) {
		t.Errorf("events logged: %v", logger.typesLogged())
	}
}

func TestAwardPointsZeroIsSilent(t *testing.T) {
	logger := &memLogger{}
	svc := NewGamificationService(logger)

	svc.AwardPoints(&gamification.Profile{}, 0, "nothing")
	if len(logger.logged) != 0 {
		t.Errorf("zero award logged events: %v", logger.typesLogged())
	}
}

func TestBadgeAwardedOnlyOnce(t *testing.T) {
	logger := &memLogger{}
	svc := NewGamificationService(logger)
	profile := &gamification.Profile{}

	if !svc.CheckAndAwardBadge(profile, gamification.BadgeQuizTaker) {
		t.Fatal("first award should succeed")
	}
	if svc.CheckAndAwardBadge(profile, gamification.BadgeQuizTaker) {
		t.Error("second award should be a no-op")
	}
	if len(profile.Badges) != 1 {
		t.Errorf("badges = %v", profile.Badges)
	}
}

func TestUnknownBadgeNotAwarded(t *testing.T) {
	svc := NewGamificationService(&memLogger{})
	profile := &gamification.Profile{}

	if svc.CheckAndAwardBadge(profile, "Imaginary Badge") {
		t.Error("unknown badge names must not be awarded")
	}
}

func TestUpdateDailyStreakAwardsWeekBadge(t *testing.T) {
	logger := &memLogger{}
	svc := NewGamificationService(logger)

	day := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	profile := &gamification.Profile{}
	for i := 0; i < 7; i++ {
		day = time.Date(2026, 8, 1+i, 12, 0, 0, 0, time.UTC)
		svc.UpdateDailyStreak(profile)
	}

	if profile.Streak.Current != 7 {
		t.Errorf("streak = %d, want 7", profile.Streak.Current)
	}
	if !profile.HasBadge(gamification.BadgeStreakWeek) {
		t.Error("seven-day streak should award the week badge")
	}
	if !logger.has(events.TypeStreakUpdated) {
		t.Errorf("events logged: %v", logger.typesLogged())
	}
	if profile.Points == 0 {
		t.Error("streak bonuses should add points")
	}
}

func TestUpdateDailyStreakSameDayQuiet(t *testing.T) {
	logger := &memLogger{}
	svc := NewGamificationService(logger)
	svc.now = func() time.Time { return time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC) }

	profile := &gamification.Profile{}
	svc.UpdateDailyStreak(profile)
	logged := len(logger.logged)

	svc.UpdateDailyStreak(profile)
	if len(logger.logged) != logged {
		t.Error("second same-day update must not log events")
	}
}
