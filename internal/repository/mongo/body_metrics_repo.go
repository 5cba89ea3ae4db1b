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

const bodyMetricsCollectionName = "body_metrics"

// mongoBodyMetricsRepository implements repository.BodyMetricsRepository
type mongoBodyMetricsRepository struct {
	collection *mongo.Collection
}

// NewMongoBodyMetricsRepository creates a new body metrics repository.
func NewMongoBodyMetricsRepository(db *mongo.Database) repository.BodyMetricsRepository {
	return &mongoBodyMetricsRepository{
		collection: db.Collection(bodyMetricsCollectionName),
	}
}

// Create inserts a new body metrics sample. A sample may carry any subset of
// measurements; only the owner is mandatory.
func (r *mongoBodyMetricsRepository) Create(ctx context.Context, sample *domain.BodyMetricsSample) (primitive.ObjectID, error) {
	if sample.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("body metrics sample requires userId")
	}

	sample.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	sample.CreatedAt = now
	sample.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, sample)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted sample ID")
	}
	return insertedID, nil
}

// GetByUserID retrieves all samples for a user, oldest first, so trend
// consumers receive them in chronological order.
func (r *mongoBodyMetricsRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.BodyMetricsSample, error) {
	var samples []domain.BodyMetricsSample
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &samples); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

// EnsureBodyMetricsIndexes creates necessary indexes. Call during startup.
func EnsureBodyMetricsIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.WithError(err).WithField("collection", collection.Name()).Warn("failed to create indexes")
	}
}
