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

const mealLogCollectionName = "meal_logs"

// mongoMealLogRepository implements repository.MealLogRepository
type mongoMealLogRepository struct {
	collection *mongo.Collection
}

// NewMongoMealLogRepository creates a new meal log repository.
func NewMongoMealLogRepository(db *mongo.Database) repository.MealLogRepository {
	return &mongoMealLogRepository{
		collection: db.Collection(mealLogCollectionName),
	}
}

// Create inserts a new meal log.
func (r *mongoMealLogRepository) Create(ctx context.Context, log *domain.MealLog) (primitive.ObjectID, error) {
	if log.UserID == primitive.NilObjectID || log.Name == "" {
		return primitive.NilObjectID, errors.New("meal log requires userId and name")
	}
	if !log.MealType.IsValid() {
		return primitive.NilObjectID, errors.New("meal log requires a valid meal type")
	}

	log.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	log.CreatedAt = now
	log.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted meal log ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single meal log by its ID.
func (r *mongoMealLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MealLog, error) {
	var log domain.MealLog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// GetByUserID retrieves all meal logs for a user, newest first.
func (r *mongoMealLogRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.MealLog, error) {
	var logs []domain.MealLog
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// GetByUserAndDate retrieves the meal logs of one calendar day. The stored
// date may carry a time component, so the filter is a [day, day+1) range.
func (r *mongoMealLogRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]domain.MealLog, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": dayStart, "$lt": dayEnd},
	}

	var logs []domain.MealLog
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// Delete removes a meal log, scoped to its owner.
func (r *mongoMealLogRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	if id == primitive.NilObjectID || userID == primitive.NilObjectID {
		return errors.New("meal log ID and user ID are required for deletion")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureMealLogIndexes creates necessary indexes. Call during startup.
func EnsureMealLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "mealType", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.WithError(err).WithField("collection", collection.Name()).Warn("failed to create indexes")
	}
}
