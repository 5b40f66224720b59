package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is one movement performed within a workout. The owner must
// match the referenced workout's owner; the check constraint is the
// database backstop for the application-level reference validation.
type Exercise struct {
	BaseModel

	StartTime  *time.Time `json:"start_time"`
	Weight     *float64   `json:"weight"`
	WeightUnit *string    `json:"weight_unit"`
	Reps       *int       `json:"reps"`
	Seconds    *int       `json:"seconds"`
	Notes      *string    `json:"notes"`

	ExerciseTypeID uuid.UUID `gorm:"type:uuid;not null;index" json:"exercise_type_id"`
	WorkoutID      uuid.UUID `gorm:"type:uuid;not null;index" json:"workout_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	// Relationships
	ExerciseType ExerciseType `gorm:"foreignKey:ExerciseTypeID" json:"-"`
	Workout      Workout      `gorm:"foreignKey:WorkoutID" json:"-"`
	User         User         `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
