package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType classifies a meal log into one of the four daily meal slots.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// IsValid reports whether the meal type is one of the closed set.
func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Nutrition holds the macro/micro totals of a meal. All values are
// non-negative; calories in kcal, the rest in grams.
type Nutrition struct {
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
	Fiber    float64 `bson:"fiber" json:"fiber"`
	Sugar    float64 `bson:"sugar" json:"sugar"`
}

// MealLog represents a single logged meal.
type MealLog struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID  `bson:"userId" json:"userId"`
	Date       time.Time           `bson:"date" json:"date"`
	MealType   MealType            `bson:"mealType" json:"mealType"`
	TemplateID *primitive.ObjectID `bson:"templateId,omitempty" json:"templateId,omitempty"`
	Name       string              `bson:"name" json:"name"`
	Nutrition  Nutrition           `bson:"nutrition" json:"nutrition"`
	Notes      string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time           `bson:"updatedAt" json:"updatedAt"`
}
