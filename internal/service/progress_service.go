package service

import (
	"context"
	"errors"
	"time"

	"fittrack/fitness-tracker/internal/analytics"
	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUnknownMetric = errors.New("unknown trend metric")

// achievementDefinitions is the static catalogue of achievements. Unlock
// state is per-user and persisted; everything else lives here.
var achievementDefinitions = []domain.Achievement{
	{
		Slug:        domain.AchievementFirstWorkout,
		Name:        "First Workout",
		Description: "Complete your first workout",
		Icon:        "🏋️",
		Category:    domain.CategoryWorkout,
		Requirement: domain.Requirement{Kind: domain.RequirementCount, Threshold: 1, Metric: "workouts"},
	},
	{
		Slug:        domain.AchievementWeekStreak,
		Name:        "Strong Week",
		Description: "Work out 5 times in one week",
		Icon:        "🔥",
		Category:    domain.CategoryConsistency,
		Requirement: domain.Requirement{Kind: domain.RequirementStreak, Threshold: 5, Metric: "workouts-per-week"},
	},
	{
		Slug:        domain.AchievementTenWorkouts,
		Name:        "Regular",
		Description: "Complete 10 workouts",
		Icon:        "💪",
		Category:    domain.CategoryMilestone,
		Requirement: domain.Requirement{Kind: domain.RequirementCount, Threshold: 10, Metric: "workouts"},
	},
	{
		Slug:        domain.AchievementCalorieBurn,
		Name:        "Furnace",
		Description: "Burn 1000 calories in total",
		Icon:        "⚡",
		Category:    domain.CategoryWorkout,
		Requirement: domain.Requirement{Kind: domain.RequirementTotal, Threshold: 1000, Metric: "calories"},
	},
	{
		Slug:        domain.AchievementNutritionLog,
		Name:        "Mindful Eater",
		Description: "Log meals 7 days in a row",
		Icon:        "🥗",
		Category:    domain.CategoryNutrition,
		Requirement: domain.Requirement{Kind: domain.RequirementStreak, Threshold: 7, Metric: "meal-days"},
	},
}

// --- Service Interface ---

// ProgressService runs the analytics engine over a user's logs and manages
// achievement unlock state.
type ProgressService interface {
	WeeklyProgress(ctx context.Context, userID primitive.ObjectID, weekStart time.Time) (analytics.WeeklyStats, error)
	MonthlyProgress(ctx context.Context, userID primitive.ObjectID, month time.Month, year int) (analytics.MonthlyStats, error)
	MetricTrend(ctx context.Context, userID primitive.ObjectID, metric analytics.Metric) (analytics.TrendResult, error)
	EvaluateAchievements(ctx context.Context, userID primitive.ObjectID) ([]domain.Achievement, error)
}

// --- Service Implementation ---

type progressService struct {
	workoutRepo     repository.WorkoutLogRepository
	mealRepo        repository.MealLogRepository
	metricsRepo     repository.BodyMetricsRepository
	achievementRepo repository.AchievementRepository
	now             func() time.Time
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(
	workoutRepo repository.WorkoutLogRepository,
	mealRepo repository.MealLogRepository,
	metricsRepo repository.BodyMetricsRepository,
	achievementRepo repository.AchievementRepository,
) ProgressService {
	return &progressService{
		workoutRepo:     workoutRepo,
		mealRepo:        mealRepo,
		metricsRepo:     metricsRepo,
		achievementRepo: achievementRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WeeklyProgress aggregates the user's workouts for the week starting at
// weekStart.
func (s *progressService) WeeklyProgress(ctx context.Context, userID primitive.ObjectID, weekStart time.Time) (analytics.WeeklyStats, error) {
	logs, err := s.workoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		return analytics.WeeklyStats{}, err
	}
	return analytics.ComputeWeeklyStats(logs, weekStart), nil
}

// MonthlyProgress aggregates the user's workouts and meals for a calendar
// month.
func (s *progressService) MonthlyProgress(ctx context.Context, userID primitive.ObjectID, month time.Month, year int) (analytics.MonthlyStats, error) {
	workouts, err := s.workoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		return analytics.MonthlyStats{}, err
	}
	meals, err := s.mealRepo.GetByUserID(ctx, userID)
	if err != nil {
		return analytics.MonthlyStats{}, err
	}
	return analytics.ComputeMonthlyStats(workouts, meals, month, year), nil
}

// MetricTrend classifies the direction of a body metric across all of the
// user's samples.
func (s *progressService) MetricTrend(ctx context.Context, userID primitive.ObjectID, metric analytics.Metric) (analytics.TrendResult, error) {
	if metric != analytics.MetricWeight && metric != analytics.MetricBodyFat {
		return analytics.TrendResult{}, ErrUnknownMetric
	}
	samples, err := s.metricsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return analytics.TrendResult{}, err
	}
	return analytics.ComputeTrend(samples, metric), nil
}

// EvaluateAchievements returns the full achievement catalogue with the
// user's unlock state and derived progress. Conditions that hold for the
// first time are persisted as unlocked; the transition is one-way and an
// already-unlocked achievement is never re-evaluated.
func (s *progressService) EvaluateAchievements(ctx context.Context, userID primitive.ObjectID) ([]domain.Achievement, error) {
	workouts, err := s.workoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	meals, err := s.mealRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.achievementRepo.GetUnlocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[string]*time.Time, len(unlocked))
	for i := range unlocked {
		unlockedAt[unlocked[i].Slug] = unlocked[i].UnlockedAt
	}

	// Single clock read per evaluation, so the week window and the meal
	// streak agree on what "today" means.
	today := s.now()

	result := make([]domain.Achievement, 0, len(achievementDefinitions))
	for _, def := range achievementDefinitions {
		a := def
		a.UserID = userID

		if at, ok := unlockedAt[a.Slug]; ok {
			a.UnlockedAt = at
			result = append(result, a)
			continue
		}

		if analytics.Unlocked(a, workouts, meals, today) {
			if err := s.achievementRepo.Unlock(ctx, userID, a.Slug, today); err != nil {
				return nil, err
			}
			at := today
			a.UnlockedAt = &at
		} else {
			progress := analytics.Progress(a, workouts, meals, today)
			a.Progress = &progress
		}
		result = append(result, a)
	}
	return result, nil
}
