package analytics

import (
	"time"

	"fittrack/fitness-tracker/internal/domain"
)

// WeeklyStats holds the aggregates of one calendar week of workouts.
type WeeklyStats struct {
	TotalWorkouts int     `json:"totalWorkouts"`
	TotalDuration int     `json:"totalDuration"` // minutes
	TotalCalories int     `json:"totalCalories"`
	AvgRating     float64 `json:"avgRating"`
}

// ComputeWeeklyStats aggregates all workout logs whose date falls within
// [weekStart, weekStart+7d), compared on calendar days.
//
// The average rating divides the sum of present ratings by the number of
// workouts in the window, not the number of rated workouts: an unrated
// workout contributes 0 to the numerator but still counts in the denominator.
// An empty window yields all-zero stats.
func ComputeWeeklyStats(logs []domain.WorkoutLog, weekStart time.Time) WeeklyStats {
	start := dayOf(weekStart)
	end := start.AddDate(0, 0, 7)

	var stats WeeklyStats
	var ratingSum int
	for _, l := range logs {
		day := dayOf(l.Date)
		if day.Before(start) || !day.Before(end) {
			continue
		}
		stats.TotalWorkouts++
		stats.TotalDuration += l.Duration
		stats.TotalCalories += l.TotalCalories
		if l.Rating != nil {
			ratingSum += *l.Rating
		}
	}
	if stats.TotalWorkouts > 0 {
		stats.AvgRating = float64(ratingSum) / float64(stats.TotalWorkouts)
	}
	return stats
}
