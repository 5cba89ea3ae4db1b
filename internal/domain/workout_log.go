package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SetRecord is a single set performed within an exercise entry.
// All performance fields are optional; a timed set has DurationSec and no Reps,
// a bodyweight set has Reps and no Weight, etc.
type SetRecord struct {
	Reps        *int     `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight      *float64 `bson:"weight,omitempty" json:"weight,omitempty"` // kg
	DurationSec *int     `bson:"durationSec,omitempty" json:"durationSec,omitempty"`
	Completed   bool     `bson:"completed" json:"completed"`
}

// ExerciseEntry is one exercise within a workout, with its ordered sets.
type ExerciseEntry struct {
	ExerciseID string      `bson:"exerciseId" json:"exerciseId"`
	Sets       []SetRecord `bson:"sets" json:"sets"`
}

// WorkoutLog represents a single logged workout session.
// Logs are append-only from the analytics point of view: once created they are
// never mutated by this codebase, only read.
type WorkoutLog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Date          time.Time          `bson:"date" json:"date"` // calendar day; time-of-day carries no meaning
	Duration      int                `bson:"duration" json:"duration"` // minutes, non-negative
	Exercises     []ExerciseEntry    `bson:"exercises" json:"exercises"`
	TotalCalories int                `bson:"totalCalories" json:"totalCalories"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Rating        *int               `bson:"rating,omitempty" json:"rating,omitempty"` // 1-5, optional
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
