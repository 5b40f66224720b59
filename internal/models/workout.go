package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	WorkoutStatusInProgress = "in-progress"
	WorkoutStatusPaused     = "paused"
	WorkoutStatusCompleted  = "completed"
)

// Workout is one training session. EndTime is nil while in progress.
type Workout struct {
	BaseModel

	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Status    string     `gorm:"not null" json:"status"`
	Notes     *string    `json:"notes"`

	WorkoutTypeID *uuid.UUID `gorm:"type:uuid;index" json:"workout_type_id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`

	// Relationships
	WorkoutType *WorkoutType `gorm:"foreignKey:WorkoutTypeID" json:"-"`
	User        User         `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
