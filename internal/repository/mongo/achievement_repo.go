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

const achievementCollectionName = "achievements"

// mongoAchievementRepository implements repository.AchievementRepository.
// Only unlocked achievements are stored; a user with no rows has everything
// locked.
type mongoAchievementRepository struct {
	collection *mongo.Collection
}

// NewMongoAchievementRepository creates a new achievement repository.
func NewMongoAchievementRepository(db *mongo.Database) repository.AchievementRepository {
	return &mongoAchievementRepository{
		collection: db.Collection(achievementCollectionName),
	}
}

// GetUnlocked retrieves the unlocked achievements of a user.
func (r *mongoAchievementRepository) GetUnlocked(ctx context.Context, userID primitive.ObjectID) ([]domain.Achievement, error) {
	var unlocked []domain.Achievement
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &unlocked); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return unlocked, nil
}

// Unlock records the one-way locked->unlocked transition. The upsert with
// $setOnInsert keeps the original unlock timestamp if a concurrent request
// already unlocked the same achievement.
func (r *mongoAchievementRepository) Unlock(ctx context.Context, userID primitive.ObjectID, slug string, at time.Time) error {
	if userID == primitive.NilObjectID || slug == "" {
		return errors.New("achievement unlock requires userId and slug")
	}

	filter := bson.M{"userId": userID, "slug": slug}
	update := bson.M{
		"$setOnInsert": bson.M{
			"userId":     userID,
			"slug":       slug,
			"unlockedAt": at.UTC(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil && mongo.IsDuplicateKeyError(err) {
		// Lost the upsert race; the achievement is unlocked either way.
		return nil
	}
	return err
}

// EnsureAchievementIndexes creates necessary indexes. Call during startup.
func EnsureAchievementIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.WithError(err).WithField("collection", collection.Name()).Warn("failed to create indexes")
	}
}
