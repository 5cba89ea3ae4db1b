package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"
	"fittrack/fitness-tracker/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound   = errors.New("workout log not found")
	ErrMealNotFound      = errors.New("meal log not found")
	ErrValidationFailed  = errors.New("log validation failed")
	ErrPhotoAccessDenied = errors.New("access denied to this photo")
)

// PhotoUpload is the outcome of requesting a progress-photo upload slot: the
// client PUTs the file to URL and records ObjectKey on its next metrics sample.
type PhotoUpload struct {
	URL       string
	ObjectKey string
}

// --- Service Interface ---

// TrackingService covers the logging surface: workout logs, meal logs, body
// metric samples, and the progress-photo upload flow. All operations are
// scoped to the authenticated user.
type TrackingService interface {
	LogWorkout(ctx context.Context, userID primitive.ObjectID, log domain.WorkoutLog) (*domain.WorkoutLog, error)
	GetWorkoutLogs(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutLog, error)
	GetWorkoutLog(ctx context.Context, userID, logID primitive.ObjectID) (*domain.WorkoutLog, error)
	DeleteWorkoutLog(ctx context.Context, userID, logID primitive.ObjectID) error

	LogMeal(ctx context.Context, userID primitive.ObjectID, log domain.MealLog) (*domain.MealLog, error)
	GetMealLogs(ctx context.Context, userID primitive.ObjectID) ([]domain.MealLog, error)
	GetMealLogsForDay(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]domain.MealLog, error)
	GetMealLog(ctx context.Context, userID, logID primitive.ObjectID) (*domain.MealLog, error)
	DeleteMealLog(ctx context.Context, userID, logID primitive.ObjectID) error

	LogBodyMetrics(ctx context.Context, userID primitive.ObjectID, sample domain.BodyMetricsSample) (*domain.BodyMetricsSample, error)
	GetBodyMetrics(ctx context.Context, userID primitive.ObjectID) ([]domain.BodyMetricsSample, error)

	RequestPhotoUpload(ctx context.Context, userID primitive.ObjectID, contentType string) (*PhotoUpload, error)
	PhotoDownloadURL(ctx context.Context, userID primitive.ObjectID, objectKey string) (string, error)
}

// --- Service Implementation ---

type trackingService struct {
	workoutRepo repository.WorkoutLogRepository
	mealRepo    repository.MealLogRepository
	metricsRepo repository.BodyMetricsRepository
	fileStorage storage.FileStorage
}

// NewTrackingService creates a new instance of trackingService.
func NewTrackingService(
	workoutRepo repository.WorkoutLogRepository,
	mealRepo repository.MealLogRepository,
	metricsRepo repository.BodyMetricsRepository,
	fileStorage storage.FileStorage,
) TrackingService {
	return &trackingService{
		workoutRepo: workoutRepo,
		mealRepo:    mealRepo,
		metricsRepo: metricsRepo,
		fileStorage: fileStorage,
	}
}

// --- Workout logs ---

// LogWorkout validates and stores a new workout log for the user.
func (s *trackingService) LogWorkout(ctx context.Context, userID primitive.ObjectID, log domain.WorkoutLog) (*domain.WorkoutLog, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	if log.Duration < 0 || log.TotalCalories < 0 {
		return nil, ErrValidationFailed
	}
	if log.Rating != nil && (*log.Rating < 1 || *log.Rating > 5) {
		return nil, ErrValidationFailed
	}
	if log.Date.IsZero() {
		return nil, ErrValidationFailed
	}

	log.UserID = userID
	logID, err := s.workoutRepo.Create(ctx, &log)
	if err != nil {
		return nil, err
	}
	log.ID = logID
	return &log, nil
}

func (s *trackingService) GetWorkoutLogs(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	return s.workoutRepo.GetByUserID(ctx, userID)
}

// GetWorkoutLog fetches one log and enforces ownership. A log belonging to a
// different user is reported as not found rather than forbidden, so the
// existence of other users' logs is not leaked.
func (s *trackingService) GetWorkoutLog(ctx context.Context, userID, logID primitive.ObjectID) (*domain.WorkoutLog, error) {
	log, err := s.workoutRepo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if log.UserID != userID {
		return nil, ErrWorkoutNotFound
	}
	return log, nil
}

func (s *trackingService) DeleteWorkoutLog(ctx context.Context, userID, logID primitive.ObjectID) error {
	// The repository filter already scopes deletion to the owner.
	err := s.workoutRepo.Delete(ctx, logID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}

// --- Meal logs ---

// LogMeal validates and stores a new meal log for the user.
func (s *trackingService) LogMeal(ctx context.Context, userID primitive.ObjectID, log domain.MealLog) (*domain.MealLog, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	if log.Name == "" || !log.MealType.IsValid() || log.Date.IsZero() {
		return nil, ErrValidationFailed
	}
	n := log.Nutrition
	if n.Calories < 0 || n.Protein < 0 || n.Carbs < 0 || n.Fat < 0 || n.Fiber < 0 || n.Sugar < 0 {
		return nil, ErrValidationFailed
	}

	log.UserID = userID
	logID, err := s.mealRepo.Create(ctx, &log)
	if err != nil {
		return nil, err
	}
	log.ID = logID
	return &log, nil
}

func (s *trackingService) GetMealLogs(ctx context.Context, userID primitive.ObjectID) ([]domain.MealLog, error) {
	return s.mealRepo.GetByUserID(ctx, userID)
}

func (s *trackingService) GetMealLogsForDay(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]domain.MealLog, error) {
	return s.mealRepo.GetByUserAndDate(ctx, userID, day)
}

func (s *trackingService) GetMealLog(ctx context.Context, userID, logID primitive.ObjectID) (*domain.MealLog, error) {
	log, err := s.mealRepo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	if log.UserID != userID {
		return nil, ErrMealNotFound
	}
	return log, nil
}

func (s *trackingService) DeleteMealLog(ctx context.Context, userID, logID primitive.ObjectID) error {
	err := s.mealRepo.Delete(ctx, logID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMealNotFound
	}
	return err
}

// --- Body metrics ---

// LogBodyMetrics validates and stores a new sample. Every measurement is
// optional; validation only rejects values outside their physical range.
func (s *trackingService) LogBodyMetrics(ctx context.Context, userID primitive.ObjectID, sample domain.BodyMetricsSample) (*domain.BodyMetricsSample, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	if sample.Date.IsZero() {
		return nil, ErrValidationFailed
	}
	if sample.Weight != nil && *sample.Weight < 0 {
		return nil, ErrValidationFailed
	}
	if sample.BodyFatPct != nil && (*sample.BodyFatPct < 0 || *sample.BodyFatPct > 100) {
		return nil, ErrValidationFailed
	}
	if sample.MuscleMass != nil && *sample.MuscleMass < 0 {
		return nil, ErrValidationFailed
	}

	sample.UserID = userID
	sampleID, err := s.metricsRepo.Create(ctx, &sample)
	if err != nil {
		return nil, err
	}
	sample.ID = sampleID
	return &sample, nil
}

func (s *trackingService) GetBodyMetrics(ctx context.Context, userID primitive.ObjectID) ([]domain.BodyMetricsSample, error) {
	return s.metricsRepo.GetByUserID(ctx, userID)
}

// --- Progress photos ---

// photoKeyPrefix returns the object-key namespace of one user's photos.
// Ownership checks rely on this prefix.
func photoKeyPrefix(userID primitive.ObjectID) string {
	return fmt.Sprintf("progress-photos/%s/", userID.Hex())
}

// RequestPhotoUpload issues a presigned PUT URL for a fresh object key in the
// user's photo namespace. The client uploads directly to storage and then
// records the key on a body metrics sample.
func (s *trackingService) RequestPhotoUpload(ctx context.Context, userID primitive.ObjectID, contentType string) (*PhotoUpload, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrValidationFailed
	}

	objectKey := photoKeyPrefix(userID) + uuid.NewString()
	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}
	return &PhotoUpload{URL: url, ObjectKey: objectKey}, nil
}

// PhotoDownloadURL issues a presigned GET URL for a photo the user owns.
func (s *trackingService) PhotoDownloadURL(ctx context.Context, userID primitive.ObjectID, objectKey string) (string, error) {
	if !strings.HasPrefix(objectKey, photoKeyPrefix(userID)) {
		return "", ErrPhotoAccessDenied
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
}
