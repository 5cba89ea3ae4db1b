package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AchievementCategory groups achievements for display purposes.
type AchievementCategory string

const (
	CategoryWorkout     AchievementCategory = "workout"
	CategoryNutrition   AchievementCategory = "nutrition"
	CategoryConsistency AchievementCategory = "consistency"
	CategoryMilestone   AchievementCategory = "milestone"
)

// RequirementKind describes how an achievement's threshold is interpreted.
type RequirementKind string

const (
	RequirementCount  RequirementKind = "count"
	RequirementStreak RequirementKind = "streak"
	RequirementTotal  RequirementKind = "total"
	RequirementTarget RequirementKind = "target"
)

// Requirement is the machine-checkable unlock condition of an achievement.
type Requirement struct {
	Kind      RequirementKind `bson:"kind" json:"kind"`
	Threshold float64         `bson:"threshold" json:"threshold"`
	Metric    string          `bson:"metric" json:"metric"`
}

// Well-known achievement slugs. Evaluation dispatches on these; slugs without
// a bespoke rule evaluate as locked.
const (
	AchievementFirstWorkout = "first-workout"
	AchievementWeekStreak   = "week-streak"
	AchievementTenWorkouts  = "10-workouts"
	AchievementCalorieBurn  = "calorie-burn"
	AchievementNutritionLog = "nutrition-log"
)

// Achievement is a named milestone. Slug identifies the unlock rule; DocID is
// the storage identity of the per-user row. UnlockedAt present means unlocked;
// the locked->unlocked transition is one-way.
type Achievement struct {
	DocID       primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	UserID      primitive.ObjectID  `bson:"userId" json:"-"`
	Slug        string              `bson:"slug" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Description string              `bson:"description" json:"description"`
	Icon        string              `bson:"icon" json:"icon"`
	Category    AchievementCategory `bson:"category" json:"category"`
	Requirement Requirement         `bson:"requirement" json:"requirement"`
	UnlockedAt  *time.Time          `bson:"unlockedAt,omitempty" json:"unlockedAt,omitempty"`
	Progress    *float64            `bson:"-" json:"progress,omitempty"` // derived, meaningful only while locked
}

// Unlocked reports whether the achievement has been unlocked.
func (a Achievement) Unlocked() bool {
	return a.UnlockedAt != nil
}
