package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const subscriptionCollectionName = "subscriptions"

// mongoSubscriptionRepository implements repository.SubscriptionRepository
type mongoSubscriptionRepository struct {
	collection *mongo.Collection
}

// NewMongoSubscriptionRepository creates a new subscription repository.
func NewMongoSubscriptionRepository(db *mongo.Database) repository.SubscriptionRepository {
	return &mongoSubscriptionRepository{
		collection: db.Collection(subscriptionCollectionName),
	}
}

// GetByUserID retrieves the subscription record of a user.
func (r *mongoSubscriptionRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// Upsert creates or replaces the user's subscription record.
func (r *mongoSubscriptionRepository) Upsert(ctx context.Context, sub *domain.Subscription) error {
	if sub.UserID == primitive.NilObjectID {
		return errors.New("subscription requires userId")
	}

	now := time.Now().UTC()
	sub.UpdatedAt = now

	filter := bson.M{"userId": sub.UserID}
	update := bson.M{
		"$set": bson.M{
			"plan":      sub.Plan,
			"status":    sub.Status,
			"renewsAt":  sub.RenewsAt,
			"updatedAt": sub.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"userId":    sub.UserID,
			"createdAt": now,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// EnsureSubscriptionIndexes creates necessary indexes. Call during startup.
func EnsureSubscriptionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.WithError(err).WithField("collection", collection.Name()).Warn("failed to create indexes")
	}
}
