package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"fittrack/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFileStorage struct {
	uploadKeys []string
}

func (f *fakeFileStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	f.uploadKeys = append(f.uploadKeys, objectKey)
	return "https://storage.test/upload/" + objectKey, nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/download/" + objectKey, nil
}

func (f *fakeFileStorage) DeleteObject(_ context.Context, _ string) error {
	return nil
}

func newTestTrackingService(files *fakeFileStorage) TrackingService {
	return NewTrackingService(&fakeWorkoutRepo{}, &fakeMealRepo{}, &fakeMetricsRepo{}, files)
}

func TestTrackingService_LogWorkout_Validation(t *testing.T) {
	svc := newTestTrackingService(&fakeFileStorage{})
	userID := primitive.NewObjectID()

	badRating := 6
	_, err := svc.LogWorkout(context.Background(), userID, domain.WorkoutLog{
		Date: testDay(2024, time.June, 1), Duration: 30, Rating: &badRating,
	})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.LogWorkout(context.Background(), userID, domain.WorkoutLog{
		Date: testDay(2024, time.June, 1), Duration: -5,
	})
	assert.ErrorIs(t, err, ErrValidationFailed)

	log, err := svc.LogWorkout(context.Background(), userID, domain.WorkoutLog{
		Date: testDay(2024, time.June, 1), Duration: 30, TotalCalories: 150,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, log.UserID)
	assert.False(t, log.ID.IsZero())
}

func TestTrackingService_GetWorkoutLog_OwnershipHidesForeignLogs(t *testing.T) {
	svc := newTestTrackingService(&fakeFileStorage{})
	owner := primitive.NewObjectID()

	log, err := svc.LogWorkout(context.Background(), owner, domain.WorkoutLog{
		Date: testDay(2024, time.June, 1), Duration: 30,
	})
	require.NoError(t, err)

	_, err = svc.GetWorkoutLog(context.Background(), primitive.NewObjectID(), log.ID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	got, err := svc.GetWorkoutLog(context.Background(), owner, log.ID)
	require.NoError(t, err)
	assert.Equal(t, log.ID, got.ID)
}

func TestTrackingService_LogMeal_Validation(t *testing.T) {
	svc := newTestTrackingService(&fakeFileStorage{})
	userID := primitive.NewObjectID()

	_, err := svc.LogMeal(context.Background(), userID, domain.MealLog{
		Date: testDay(2024, time.June, 1), Name: "Oats", MealType: domain.MealType("brunch"),
	})
	assert.ErrorIs(t, err, ErrValidationFailed)

	meal, err := svc.LogMeal(context.Background(), userID, domain.MealLog{
		Date: testDay(2024, time.June, 1), Name: "Oats", MealType: domain.MealBreakfast,
		Nutrition: domain.Nutrition{Calories: 350, Protein: 12, Carbs: 60, Fat: 6},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MealBreakfast, meal.MealType)
}

func TestTrackingService_LogBodyMetrics_RangeChecks(t *testing.T) {
	svc := newTestTrackingService(&fakeFileStorage{})
	userID := primitive.NewObjectID()

	tooFat := 120.0
	_, err := svc.LogBodyMetrics(context.Background(), userID, domain.BodyMetricsSample{
		Date: testDay(2024, time.June, 1), BodyFatPct: &tooFat,
	})
	assert.ErrorIs(t, err, ErrValidationFailed)

	// A sample with no measurements at all is still valid.
	sample, err := svc.LogBodyMetrics(context.Background(), userID, domain.BodyMetricsSample{
		Date: testDay(2024, time.June, 1),
	})
	require.NoError(t, err)
	assert.Nil(t, sample.Weight)
}

func TestTrackingService_PhotoUpload_KeyInUserNamespace(t *testing.T) {
	files := &fakeFileStorage{}
	svc := newTestTrackingService(files)
	userID := primitive.NewObjectID()

	upload, err := svc.RequestPhotoUpload(context.Background(), userID, "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(upload.ObjectKey, "progress-photos/"+userID.Hex()+"/"))
	assert.Contains(t, upload.URL, upload.ObjectKey)

	_, err = svc.RequestPhotoUpload(context.Background(), userID, "application/pdf")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestTrackingService_PhotoDownload_DeniesForeignKeys(t *testing.T) {
	svc := newTestTrackingService(&fakeFileStorage{})
	userID := primitive.NewObjectID()
	other := primitive.NewObjectID()

	_, err := svc.PhotoDownloadURL(context.Background(), userID, "progress-photos/"+other.Hex()+"/abc")
	assert.ErrorIs(t, err, ErrPhotoAccessDenied)

	url, err := svc.PhotoDownloadURL(context.Background(), userID, "progress-photos/"+userID.Hex()+"/abc")
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}
