package repository

import (
	"context"
	"time"

	"fittrack/fitness-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("already exists")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// WorkoutLogRepository defines the interface for interacting with workout logs.
// Logs are append-only: there is no update operation.
type WorkoutLogRepository interface {
	Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutLog, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutLog, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// MealLogRepository defines the interface for interacting with meal logs.
type MealLogRepository interface {
	Create(ctx context.Context, log *domain.MealLog) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MealLog, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.MealLog, error)
	GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]domain.MealLog, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// BodyMetricsRepository defines the interface for interacting with body
// metric samples.
type BodyMetricsRepository interface {
	Create(ctx context.Context, sample *domain.BodyMetricsSample) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.BodyMetricsSample, error)
}

// AchievementRepository persists per-user achievement unlock state. Only
// unlocked achievements are stored; definitions live in code and locked state
// is the absence of a row.
type AchievementRepository interface {
	GetUnlocked(ctx context.Context, userID primitive.ObjectID) ([]domain.Achievement, error)
	Unlock(ctx context.Context, userID primitive.ObjectID, slug string, at time.Time) error
}

// SubscriptionRepository defines the interface for interacting with
// subscription records. One record per user.
type SubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Subscription, error)
	Upsert(ctx context.Context, sub *domain.Subscription) error
}
