package analytics_test

import (
	"testing"
	"time"

	"fittrack/fitness-tracker/internal/analytics"
	"fittrack/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func workoutsOn(days ...time.Time) []domain.WorkoutLog {
	logs := make([]domain.WorkoutLog, 0, len(days))
	for _, d := range days {
		logs = append(logs, domain.WorkoutLog{Date: d, Duration: 30, TotalCalories: 100})
	}
	return logs
}

func mealsOn(days ...time.Time) []domain.MealLog {
	meals := make([]domain.MealLog, 0, len(days))
	for _, d := range days {
		meals = append(meals, domain.MealLog{Date: d, MealType: domain.MealLunch})
	}
	return meals
}

func achievement(slug string, threshold float64) domain.Achievement {
	return domain.Achievement{Slug: slug, Requirement: domain.Requirement{Threshold: threshold}}
}

func TestUnlocked_FirstWorkout(t *testing.T) {
	today := day(2024, time.June, 12)
	a := achievement(domain.AchievementFirstWorkout, 1)

	assert.False(t, analytics.Unlocked(a, nil, nil, today))
	assert.True(t, analytics.Unlocked(a, workoutsOn(day(2024, time.June, 1)), nil, today))
}

func TestUnlocked_TenWorkouts(t *testing.T) {
	today := day(2024, time.June, 12)
	a := achievement(domain.AchievementTenWorkouts, 10)

	nine := make([]time.Time, 9)
	for i := range nine {
		nine[i] = day(2024, time.May, i+1)
	}
	assert.False(t, analytics.Unlocked(a, workoutsOn(nine...), nil, today))
	assert.True(t, analytics.Unlocked(a, workoutsOn(append(nine, day(2024, time.May, 10))...), nil, today))
}

func TestUnlocked_CalorieBurn(t *testing.T) {
	today := day(2024, time.June, 12)
	a := achievement(domain.AchievementCalorieBurn, 1000)

	logs := []domain.WorkoutLog{
		{Date: day(2024, time.June, 1), TotalCalories: 400},
		{Date: day(2024, time.June, 2), TotalCalories: 500},
	}
	assert.False(t, analytics.Unlocked(a, logs, nil, today))

	logs = append(logs, domain.WorkoutLog{Date: day(2024, time.June, 3), TotalCalories: 100})
	assert.True(t, analytics.Unlocked(a, logs, nil, today))
}

func TestUnlocked_WeekStreak(t *testing.T) {
	// 2024-06-12 is a Wednesday; the current week starts Sunday 2024-06-09.
	today := day(2024, time.June, 12)
	a := achievement(domain.AchievementWeekStreak, 5)

	thisWeek := workoutsOn(
		day(2024, time.June, 9),
		day(2024, time.June, 10),
		day(2024, time.June, 11),
		day(2024, time.June, 12),
	)
	assert.False(t, analytics.Unlocked(a, thisWeek, nil, today))

	// A fifth workout from last week must not count.
	withOld := append(workoutsOn(day(2024, time.June, 5)), thisWeek...)
	assert.False(t, analytics.Unlocked(a, withOld, nil, today))

	five := append(thisWeek, workoutsOn(day(2024, time.June, 13))...)
	assert.True(t, analytics.Unlocked(a, five, nil, today))
}

func TestUnlocked_NutritionLog(t *testing.T) {
	today := day(2024, time.June, 12)
	a := achievement(domain.AchievementNutritionLog, 7)

	var days []time.Time
	for i := 0; i < 7; i++ {
		days = append(days, today.AddDate(0, 0, -i))
	}
	assert.True(t, analytics.Unlocked(a, nil, mealsOn(days...), today))

	// A single gap anywhere in the window breaks the streak.
	gapped := append([]time.Time{}, days...)
	gapped = append(gapped[:3], gapped[4:]...)
	assert.False(t, analytics.Unlocked(a, nil, mealsOn(gapped...), today))
}

func TestUnlocked_UnknownSlugDefaultsLocked(t *testing.T) {
	today := day(2024, time.June, 12)
	a := achievement("marathon-finisher", 1)

	assert.False(t, analytics.Unlocked(a, workoutsOn(day(2024, time.June, 1)), nil, today))
}

func TestMealStreak(t *testing.T) {
	today := day(2024, time.June, 12)

	assert.Zero(t, analytics.MealStreak(nil, today))

	// Three consecutive days ending today, then a gap, then more history.
	meals := mealsOn(
		day(2024, time.June, 12),
		day(2024, time.June, 11),
		day(2024, time.June, 10),
		day(2024, time.June, 8),
	)
	assert.Equal(t, 3, analytics.MealStreak(meals, today))

	// No meal today means no streak, regardless of yesterday.
	assert.Zero(t, analytics.MealStreak(mealsOn(day(2024, time.June, 11)), today))

	// Multiple logs on one day still count that day once.
	doubled := mealsOn(day(2024, time.June, 12), day(2024, time.June, 12))
	assert.Equal(t, 1, analytics.MealStreak(doubled, today))
}

func TestProgress(t *testing.T) {
	today := day(2024, time.June, 12)

	a := achievement(domain.AchievementTenWorkouts, 10)
	logs := workoutsOn(day(2024, time.June, 1), day(2024, time.June, 2), day(2024, time.June, 3))
	assert.InDelta(t, 30, analytics.Progress(a, logs, nil, today), 1e-9)

	// Progress caps at 100 once the condition is exceeded.
	first := achievement(domain.AchievementFirstWorkout, 1)
	assert.InDelta(t, 100, analytics.Progress(first, logs, nil, today), 1e-9)

	// Unknown slug or missing threshold yields zero.
	assert.Zero(t, analytics.Progress(achievement("mystery", 5), logs, nil, today))
	assert.Zero(t, analytics.Progress(achievement(domain.AchievementTenWorkouts, 0), logs, nil, today))
}

func TestMostRecentSunday(t *testing.T) {
	// Wednesday rolls back to the previous Sunday.
	assert.Equal(t, day(2024, time.June, 9), analytics.MostRecentSunday(day(2024, time.June, 12)))
	// A Sunday maps to itself.
	assert.Equal(t, day(2024, time.June, 9), analytics.MostRecentSunday(day(2024, time.June, 9)))
	// Time-of-day is stripped.
	assert.Equal(t,
		day(2024, time.June, 9),
		analytics.MostRecentSunday(time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC)),
	)
}
