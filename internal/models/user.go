package models

type User struct {
	BaseModel

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Relationships
	OwnedWorkoutTypes  []WorkoutType  `gorm:"foreignKey:OwnerUserID" json:"-"`
	OwnedExerciseTypes []ExerciseType `gorm:"foreignKey:OwnerUserID" json:"-"`
	Workouts           []Workout      `gorm:"foreignKey:UserID" json:"-"`
	Exercises          []Exercise     `gorm:"foreignKey:UserID" json:"-"`
}
