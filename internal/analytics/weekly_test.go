package analytics_test

import (
	"testing"
	"time"

	"fittrack/fitness-tracker/internal/analytics"
	"fittrack/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(i int) *int { return &i }

func TestComputeWeeklyStats_Empty(t *testing.T) {
	stats := analytics.ComputeWeeklyStats(nil, day(2024, time.January, 7))
	assert.Equal(t, analytics.WeeklyStats{}, stats)
}

func TestComputeWeeklyStats_UnratedCountsInDenominator(t *testing.T) {
	logs := []domain.WorkoutLog{
		{Date: day(2024, time.January, 10), Duration: 30, TotalCalories: 150, Rating: intPtr(4)},
		{Date: day(2024, time.January, 13), Duration: 20, TotalCalories: 100},
	}

	stats := analytics.ComputeWeeklyStats(logs, day(2024, time.January, 7))

	assert.Equal(t, 2, stats.TotalWorkouts)
	assert.Equal(t, 50, stats.TotalDuration)
	assert.Equal(t, 250, stats.TotalCalories)
	// (4 + 0) / 2: the unrated workout weighs zero in the numerator but
	// still counts toward the divisor.
	assert.InDelta(t, 2.0, stats.AvgRating, 1e-9)
}

func TestComputeWeeklyStats_WindowBounds(t *testing.T) {
	weekStart := day(2024, time.January, 7)
	logs := []domain.WorkoutLog{
		{Date: day(2024, time.January, 6), Duration: 10},  // day before the window
		{Date: day(2024, time.January, 7), Duration: 20},  // first day, inclusive
		{Date: day(2024, time.January, 13), Duration: 30}, // last day
		{Date: day(2024, time.January, 14), Duration: 40}, // start+7, exclusive
	}

	stats := analytics.ComputeWeeklyStats(logs, weekStart)

	assert.Equal(t, 2, stats.TotalWorkouts)
	assert.Equal(t, 50, stats.TotalDuration)
}

func TestComputeWeeklyStats_TimeOfDayIgnored(t *testing.T) {
	logs := []domain.WorkoutLog{
		// Logged late in the evening of the last day of the window; the
		// clock time must not push it past the exclusive upper bound.
		{Date: time.Date(2024, time.January, 13, 23, 30, 0, 0, time.UTC), Duration: 45},
	}

	stats := analytics.ComputeWeeklyStats(logs, day(2024, time.January, 7))
	assert.Equal(t, 1, stats.TotalWorkouts)
	assert.Equal(t, 45, stats.TotalDuration)
}

func TestComputeWeeklyStats_NoRatedWorkouts(t *testing.T) {
	logs := []domain.WorkoutLog{
		{Date: day(2024, time.March, 4), Duration: 25, TotalCalories: 200},
	}

	stats := analytics.ComputeWeeklyStats(logs, day(2024, time.March, 3))
	assert.Zero(t, stats.AvgRating)
	assert.Equal(t, 1, stats.TotalWorkouts)
}
