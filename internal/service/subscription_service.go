package service

import (
	"context"
	"errors"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidSubscription = errors.New("invalid subscription plan or status")

// --- Service Interface ---

// SubscriptionService manages the per-user subscription record. Payment
// processing happens outside this system; only the resulting plan and status
// are stored here.
type SubscriptionService interface {
	GetSubscription(ctx context.Context, userID primitive.ObjectID) (*domain.Subscription, error)
	UpdateSubscription(ctx context.Context, userID primitive.ObjectID, plan domain.SubscriptionPlan, status domain.SubscriptionStatus, renewsAt *time.Time) (*domain.Subscription, error)
}

// --- Service Implementation ---

type subscriptionService struct {
	subRepo repository.SubscriptionRepository
}

// NewSubscriptionService creates a new instance of subscriptionService.
func NewSubscriptionService(subRepo repository.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{subRepo: subRepo}
}

// GetSubscription returns the user's subscription record. A user without one
// is on the free plan; the default is returned without being persisted.
func (s *subscriptionService) GetSubscription(ctx context.Context, userID primitive.ObjectID) (*domain.Subscription, error) {
	sub, err := s.subRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.Subscription{
				UserID: userID,
				Plan:   domain.PlanFree,
				Status: domain.SubscriptionActive,
			}, nil
		}
		return nil, err
	}
	return sub, nil
}

// UpdateSubscription creates or replaces the user's subscription record.
func (s *subscriptionService) UpdateSubscription(ctx context.Context, userID primitive.ObjectID, plan domain.SubscriptionPlan, status domain.SubscriptionStatus, renewsAt *time.Time) (*domain.Subscription, error) {
	switch plan {
	case domain.PlanFree, domain.PlanPremium:
	default:
		return nil, ErrInvalidSubscription
	}
	switch status {
	case domain.SubscriptionActive, domain.SubscriptionCanceled, domain.SubscriptionPastDue:
	default:
		return nil, ErrInvalidSubscription
	}

	sub := &domain.Subscription{
		UserID:   userID,
		Plan:     plan,
		Status:   status,
		RenewsAt: renewsAt,
	}
	if err := s.subRepo.Upsert(ctx, sub); err != nil {
		return nil, err
	}
	return s.subRepo.GetByUserID(ctx, userID)
}
