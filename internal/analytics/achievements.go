package analytics

import (
	"time"

	"fittrack/fitness-tracker/internal/domain"
)

// Thresholds baked into the achievement rules below. They mirror the
// Requirement descriptors of the seeded achievement definitions.
const (
	weekStreakWorkouts  = 5
	tenWorkoutsTarget   = 10
	calorieBurnTarget   = 1000
	nutritionStreakDays = 7
)

// Unlocked reports whether the achievement's unlock condition currently
// holds, evaluated against the full set of workout and meal logs. The rule
// set is closed: a slug without a bespoke rule evaluates to false, so new
// achievement definitions stay locked until a rule lands here.
func Unlocked(a domain.Achievement, workouts []domain.WorkoutLog, meals []domain.MealLog, today time.Time) bool {
	switch a.Slug {
	case domain.AchievementFirstWorkout:
		return len(workouts) >= 1
	case domain.AchievementWeekStreak:
		week := ComputeWeeklyStats(workouts, MostRecentSunday(today))
		return week.TotalWorkouts >= weekStreakWorkouts
	case domain.AchievementTenWorkouts:
		return len(workouts) >= tenWorkoutsTarget
	case domain.AchievementCalorieBurn:
		return totalCaloriesBurned(workouts) >= calorieBurnTarget
	case domain.AchievementNutritionLog:
		return MealStreak(meals, today) >= nutritionStreakDays
	default:
		return false
	}
}

// Progress returns a display percentage (0-100) of how close the achievement
// is to unlocking. It is a derived value, never persisted, and meaningless
// once the achievement is unlocked.
func Progress(a domain.Achievement, workouts []domain.WorkoutLog, meals []domain.MealLog, today time.Time) float64 {
	var current float64
	switch a.Slug {
	case domain.AchievementFirstWorkout, domain.AchievementTenWorkouts:
		current = float64(len(workouts))
	case domain.AchievementWeekStreak:
		current = float64(ComputeWeeklyStats(workouts, MostRecentSunday(today)).TotalWorkouts)
	case domain.AchievementCalorieBurn:
		current = float64(totalCaloriesBurned(workouts))
	case domain.AchievementNutritionLog:
		current = float64(MealStreak(meals, today))
	default:
		return 0
	}
	if a.Requirement.Threshold <= 0 {
		return 0
	}
	pct := current / a.Requirement.Threshold * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// MealStreak counts the unbroken run of calendar days with at least one meal
// log, walking backward day-by-day from today and stopping at the first gap.
func MealStreak(meals []domain.MealLog, today time.Time) int {
	loggedDays := make(map[time.Time]struct{}, len(meals))
	for _, m := range meals {
		loggedDays[dayOf(m.Date)] = struct{}{}
	}

	streak := 0
	for day := dayOf(today); ; day = day.AddDate(0, 0, -1) {
		if _, ok := loggedDays[day]; !ok {
			break
		}
		streak++
	}
	return streak
}

func totalCaloriesBurned(workouts []domain.WorkoutLog) int {
	total := 0
	for _, w := range workouts {
		total += w.TotalCalories
	}
	return total
}
