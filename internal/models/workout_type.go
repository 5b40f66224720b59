package models

import "github.com/google/uuid"

// WorkoutType is a reusable template for workouts. Types form a forest
// through ParentWorkoutTypeID. A nil OwnerUserID marks a public type,
// visible to every user.
type WorkoutType struct {
	BaseModel

	Name  string  `gorm:"not null" json:"name"`
	Notes *string `json:"notes"`

	ParentWorkoutTypeID *uuid.UUID `gorm:"type:uuid" json:"parent_workout_type_id"`
	OwnerUserID         *uuid.UUID `gorm:"type:uuid;index" json:"owner_user_id"`

	// Relationships
	ParentWorkoutType *WorkoutType  `gorm:"foreignKey:ParentWorkoutTypeID" json:"-"`
	Children          []WorkoutType `gorm:"foreignKey:ParentWorkoutTypeID" json:"-"`
	Owner             *User         `gorm:"foreignKey:OwnerUserID" json:"-"`
}
