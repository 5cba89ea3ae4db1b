package service

import (
	"context"
	"testing"
	"time"

	"fittrack/fitness-tracker/internal/analytics"
	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- fakes ---

type fakeWorkoutRepo struct {
	logs []domain.WorkoutLog
}

func (f *fakeWorkoutRepo) Create(_ context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error) {
	log.ID = primitive.NewObjectID()
	f.logs = append(f.logs, *log)
	return log.ID, nil
}

func (f *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutLog, error) {
	for i := range f.logs {
		if f.logs[i].ID == id {
			return &f.logs[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeWorkoutRepo) GetByUserID(_ context.Context, _ primitive.ObjectID) ([]domain.WorkoutLog, error) {
	return f.logs, nil
}

func (f *fakeWorkoutRepo) Delete(_ context.Context, id, _ primitive.ObjectID) error {
	for i := range f.logs {
		if f.logs[i].ID == id {
			f.logs = append(f.logs[:i], f.logs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeMealRepo struct {
	logs []domain.MealLog
}

func (f *fakeMealRepo) Create(_ context.Context, log *domain.MealLog) (primitive.ObjectID, error) {
	log.ID = primitive.NewObjectID()
	f.logs = append(f.logs, *log)
	return log.ID, nil
}

func (f *fakeMealRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.MealLog, error) {
	for i := range f.logs {
		if f.logs[i].ID == id {
			return &f.logs[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMealRepo) GetByUserID(_ context.Context, _ primitive.ObjectID) ([]domain.MealLog, error) {
	return f.logs, nil
}

func (f *fakeMealRepo) GetByUserAndDate(_ context.Context, _ primitive.ObjectID, day time.Time) ([]domain.MealLog, error) {
	var out []domain.MealLog
	for _, l := range f.logs {
		if l.Date.Year() == day.Year() && l.Date.YearDay() == day.YearDay() {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeMealRepo) Delete(_ context.Context, id, _ primitive.ObjectID) error {
	for i := range f.logs {
		if f.logs[i].ID == id {
			f.logs = append(f.logs[:i], f.logs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeMetricsRepo struct {
	samples []domain.BodyMetricsSample
}

func (f *fakeMetricsRepo) Create(_ context.Context, s *domain.BodyMetricsSample) (primitive.ObjectID, error) {
	s.ID = primitive.NewObjectID()
	f.samples = append(f.samples, *s)
	return s.ID, nil
}

func (f *fakeMetricsRepo) GetByUserID(_ context.Context, _ primitive.ObjectID) ([]domain.BodyMetricsSample, error) {
	return f.samples, nil
}

type fakeAchievementRepo struct {
	unlocked    []domain.Achievement
	unlockCalls []string
}

func (f *fakeAchievementRepo) GetUnlocked(_ context.Context, _ primitive.ObjectID) ([]domain.Achievement, error) {
	return f.unlocked, nil
}

func (f *fakeAchievementRepo) Unlock(_ context.Context, userID primitive.ObjectID, slug string, at time.Time) error {
	f.unlockCalls = append(f.unlockCalls, slug)
	f.unlocked = append(f.unlocked, domain.Achievement{UserID: userID, Slug: slug, UnlockedAt: &at})
	return nil
}

// --- helpers ---

func newTestProgressService(
	workouts *fakeWorkoutRepo,
	meals *fakeMealRepo,
	metrics *fakeMetricsRepo,
	achievements *fakeAchievementRepo,
	now time.Time,
) *progressService {
	svc := NewProgressService(workouts, meals, metrics, achievements).(*progressService)
	svc.now = func() time.Time { return now }
	return svc
}

func testDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- tests ---

func TestProgressService_WeeklyProgress(t *testing.T) {
	rating := 4
	workouts := &fakeWorkoutRepo{logs: []domain.WorkoutLog{
		{Date: testDay(2024, time.January, 10), Duration: 30, TotalCalories: 150, Rating: &rating},
		{Date: testDay(2024, time.January, 13), Duration: 20, TotalCalories: 100},
	}}
	svc := newTestProgressService(workouts, &fakeMealRepo{}, &fakeMetricsRepo{}, &fakeAchievementRepo{}, testDay(2024, time.January, 14))

	stats, err := svc.WeeklyProgress(context.Background(), primitive.NewObjectID(), testDay(2024, time.January, 7))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalWorkouts)
	assert.Equal(t, 50, stats.TotalDuration)
	assert.Equal(t, 250, stats.TotalCalories)
	assert.InDelta(t, 2.0, stats.AvgRating, 1e-9)
}

func TestProgressService_MetricTrend_UnknownMetric(t *testing.T) {
	svc := newTestProgressService(&fakeWorkoutRepo{}, &fakeMealRepo{}, &fakeMetricsRepo{}, &fakeAchievementRepo{}, testDay(2024, time.June, 12))

	_, err := svc.MetricTrend(context.Background(), primitive.NewObjectID(), analytics.Metric("bmi"))
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestProgressService_EvaluateAchievements_UnlocksAndPersists(t *testing.T) {
	workouts := &fakeWorkoutRepo{logs: []domain.WorkoutLog{
		{Date: testDay(2024, time.June, 1), Duration: 30, TotalCalories: 300},
	}}
	achRepo := &fakeAchievementRepo{}
	svc := newTestProgressService(workouts, &fakeMealRepo{}, &fakeMetricsRepo{}, achRepo, testDay(2024, time.June, 12))

	result, err := svc.EvaluateAchievements(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	require.Len(t, result, len(achievementDefinitions))

	byID := make(map[string]domain.Achievement, len(result))
	for _, a := range result {
		byID[a.Slug] = a
	}

	// One workout: only first-workout unlocks.
	assert.True(t, byID[domain.AchievementFirstWorkout].Unlocked())
	assert.False(t, byID[domain.AchievementTenWorkouts].Unlocked())
	assert.False(t, byID[domain.AchievementCalorieBurn].Unlocked())
	assert.False(t, byID[domain.AchievementNutritionLog].Unlocked())
	assert.Equal(t, []string{domain.AchievementFirstWorkout}, achRepo.unlockCalls)

	// Locked achievements carry a derived progress value.
	ten := byID[domain.AchievementTenWorkouts]
	require.NotNil(t, ten.Progress)
	assert.InDelta(t, 10, *ten.Progress, 1e-9)
	burn := byID[domain.AchievementCalorieBurn]
	require.NotNil(t, burn.Progress)
	assert.InDelta(t, 30, *burn.Progress, 1e-9)
}

func TestProgressService_EvaluateAchievements_UnlockIsOneWay(t *testing.T) {
	// The stored unlock predates the logs being wiped; it must survive
	// re-evaluation untouched.
	unlockedAt := testDay(2024, time.May, 1)
	achRepo := &fakeAchievementRepo{unlocked: []domain.Achievement{
		{Slug: domain.AchievementFirstWorkout, UnlockedAt: &unlockedAt},
	}}
	svc := newTestProgressService(&fakeWorkoutRepo{}, &fakeMealRepo{}, &fakeMetricsRepo{}, achRepo, testDay(2024, time.June, 12))

	result, err := svc.EvaluateAchievements(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)

	for _, a := range result {
		if a.Slug == domain.AchievementFirstWorkout {
			require.NotNil(t, a.UnlockedAt)
			assert.Equal(t, unlockedAt, *a.UnlockedAt)
		}
	}
	assert.Empty(t, achRepo.unlockCalls)
}

func TestProgressService_MonthlyProgress(t *testing.T) {
	workouts := &fakeWorkoutRepo{logs: []domain.WorkoutLog{
		{Date: testDay(2024, time.February, 15), Duration: 30, TotalCalories: 200},
	}}
	meals := &fakeMealRepo{logs: []domain.MealLog{
		{Date: testDay(2024, time.February, 15), MealType: domain.MealLunch, Nutrition: domain.Nutrition{Calories: 600, Protein: 45}},
	}}
	svc := newTestProgressService(workouts, meals, &fakeMetricsRepo{}, &fakeAchievementRepo{}, testDay(2024, time.February, 20))

	stats, err := svc.MonthlyProgress(context.Background(), primitive.NewObjectID(), time.February, 2024)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{15: 1}, stats.WorkoutsByDay)
	assert.Equal(t, map[int]int{15: 1}, stats.MealsByDay)
	assert.InDelta(t, 45, stats.AvgProteinPerMeal, 1e-9)
}
