package models

import "github.com/google/uuid"

// ExerciseType is a reusable template for exercises, e.g. "barbell squat".
// NumberOfWeights is how many weight slots the movement uses (dumbbells: 2).
type ExerciseType struct {
	BaseModel

	Name            string  `gorm:"not null" json:"name"`
	NumberOfWeights int     `gorm:"not null;default:1" json:"number_of_weights"`
	Notes           *string `json:"notes"`

	OwnerUserID *uuid.UUID `gorm:"type:uuid;index" json:"owner_user_id"`

	// Relationships
	Owner *User `gorm:"foreignKey:OwnerUserID" json:"-"`
}
