package analytics_test

import (
	"testing"
	"time"

	"fittrack/fitness-tracker/internal/analytics"
	"fittrack/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestComputeMonthlyStats_Empty(t *testing.T) {
	stats := analytics.ComputeMonthlyStats(nil, nil, time.January, 2024)

	assert.Empty(t, stats.WorkoutsByDay)
	assert.Empty(t, stats.MealsByDay)
	assert.Zero(t, stats.TotalWorkouts)
	assert.Zero(t, stats.TotalMeals)
	assert.Zero(t, stats.AvgProteinPerMeal)
}

func TestComputeMonthlyStats_SparseDayMap(t *testing.T) {
	workouts := []domain.WorkoutLog{
		{Date: day(2024, time.February, 15), Duration: 30, TotalCalories: 200},
		{Date: day(2024, time.February, 15), Duration: 20, TotalCalories: 100},
		{Date: day(2024, time.March, 15), Duration: 60, TotalCalories: 400}, // wrong month
		{Date: day(2023, time.February, 15), Duration: 60},                  // wrong year
	}

	stats := analytics.ComputeMonthlyStats(workouts, nil, time.February, 2024)

	assert.Equal(t, map[int]int{15: 2}, stats.WorkoutsByDay)
	assert.Equal(t, 2, stats.TotalWorkouts)
	assert.Equal(t, 50, stats.TotalDuration)
	assert.Equal(t, 300, stats.TotalCalories)
}

func TestComputeMonthlyStats_MealAggregates(t *testing.T) {
	meals := []domain.MealLog{
		{Date: day(2024, time.February, 1), MealType: domain.MealBreakfast, Nutrition: domain.Nutrition{Calories: 400, Protein: 30}},
		{Date: day(2024, time.February, 1), MealType: domain.MealDinner, Nutrition: domain.Nutrition{Calories: 700, Protein: 50}},
		{Date: day(2024, time.February, 20), MealType: domain.MealLunch, Nutrition: domain.Nutrition{Calories: 550, Protein: 40}},
		{Date: day(2024, time.April, 2), MealType: domain.MealSnack, Nutrition: domain.Nutrition{Calories: 100, Protein: 5}},
	}

	stats := analytics.ComputeMonthlyStats(nil, meals, time.February, 2024)

	assert.Equal(t, map[int]int{1: 2, 20: 1}, stats.MealsByDay)
	assert.Equal(t, 3, stats.TotalMeals)
	assert.InDelta(t, 1650, stats.TotalMealCalories, 1e-9)
	assert.InDelta(t, 40, stats.AvgProteinPerMeal, 1e-9)
}
