package analytics

import (
	"time"

	"fittrack/fitness-tracker/internal/domain"
)

// MonthlyStats holds the aggregates of one calendar month of workouts and
// meals. The per-day maps are sparse: a day without activity has no key, and
// callers must read an absent key as zero.
type MonthlyStats struct {
	WorkoutsByDay map[int]int `json:"workoutsByDay"`
	MealsByDay    map[int]int `json:"mealsByDay"`

	TotalWorkouts     int     `json:"totalWorkouts"`
	TotalDuration     int     `json:"totalDuration"` // minutes
	TotalCalories     int     `json:"totalCalories"`
	TotalMeals        int     `json:"totalMeals"`
	TotalMealCalories float64 `json:"totalMealCalories"`
	AvgProteinPerMeal float64 `json:"avgProteinPerMeal"`
}

// ComputeMonthlyStats aggregates workouts and meals logged in the given
// calendar month and year. Filtering is by calendar semantics (same month and
// year), not by elapsed days.
func ComputeMonthlyStats(workouts []domain.WorkoutLog, meals []domain.MealLog, month time.Month, year int) MonthlyStats {
	stats := MonthlyStats{
		WorkoutsByDay: make(map[int]int),
		MealsByDay:    make(map[int]int),
	}

	for _, w := range workouts {
		if w.Date.Month() != month || w.Date.Year() != year {
			continue
		}
		stats.WorkoutsByDay[w.Date.Day()]++
		stats.TotalWorkouts++
		stats.TotalDuration += w.Duration
		stats.TotalCalories += w.TotalCalories
	}

	var proteinSum float64
	for _, m := range meals {
		if m.Date.Month() != month || m.Date.Year() != year {
			continue
		}
		stats.MealsByDay[m.Date.Day()]++
		stats.TotalMeals++
		stats.TotalMealCalories += m.Nutrition.Calories
		proteinSum += m.Nutrition.Protein
	}
	if stats.TotalMeals > 0 {
		stats.AvgProteinPerMeal = proteinSum / float64(stats.TotalMeals)
	}
	return stats
}
