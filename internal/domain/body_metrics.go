package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BodyMeasurements are optional tape measurements, in centimeters.
type BodyMeasurements struct {
	Chest  *float64 `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist  *float64 `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips   *float64 `bson:"hips,omitempty" json:"hips,omitempty"`
	Arms   *float64 `bson:"arms,omitempty" json:"arms,omitempty"`
	Thighs *float64 `bson:"thighs,omitempty" json:"thighs,omitempty"`
}

// BodyMetricsSample is a dated snapshot of body measurements. Any subset of
// fields may be populated; an absent field means "not measured that day" and
// must never be read as zero.
type BodyMetricsSample struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Date         time.Time          `bson:"date" json:"date"`
	Weight       *float64           `bson:"weight,omitempty" json:"weight,omitempty"`         // kg
	BodyFatPct   *float64           `bson:"bodyFatPct,omitempty" json:"bodyFatPct,omitempty"` // 0-100
	MuscleMass   *float64           `bson:"muscleMass,omitempty" json:"muscleMass,omitempty"` // kg
	Measurements *BodyMeasurements  `bson:"measurements,omitempty" json:"measurements,omitempty"`
	PhotoKeys    []string           `bson:"photoKeys,omitempty" json:"photoKeys,omitempty"` // object storage keys
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
