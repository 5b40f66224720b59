package scope

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Time-range bounds are exclusive at both ends (field > min, field < max).
// Callers paginating on timestamps rely on this, so it is part of the
// contract.

type WorkoutParams struct {
	ID            *uuid.UUID `form:"id"`
	Status        *string    `form:"status"`
	WorkoutTypeID *uuid.UUID `form:"workout_type_id"`
	UserID        *uuid.UUID `form:"user_id"`
	MinStartTime  *time.Time `form:"min_start_time"`
	MaxStartTime  *time.Time `form:"max_start_time"`
	MinEndTime    *time.Time `form:"min_end_time"`
	MaxEndTime    *time.Time `form:"max_end_time"`
}

func (p WorkoutParams) Apply(db *gorm.DB) *gorm.DB {
	if p.ID != nil {
		db = db.Where("id = ?", *p.ID)
	}
	if p.Status != nil {
		db = db.Where("status = ?", *p.Status)
	}
	if p.WorkoutTypeID != nil {
		db = db.Where("workout_type_id = ?", *p.WorkoutTypeID)
	}
	if p.UserID != nil {
		db = db.Where("user_id = ?", *p.UserID)
	}
	if p.MinStartTime != nil {
		db = db.Where("start_time > ?", *p.MinStartTime)
	}
	if p.MaxStartTime != nil {
		db = db.Where("start_time < ?", *p.MaxStartTime)
	}
	if p.MinEndTime != nil {
		db = db.Where("end_time > ?", *p.MinEndTime)
	}
	if p.MaxEndTime != nil {
		db = db.Where("end_time < ?", *p.MaxEndTime)
	}
	return db
}

type ExerciseParams struct {
	ID             *uuid.UUID `form:"id"`
	ExerciseTypeID *uuid.UUID `form:"exercise_type_id"`
	WorkoutID      *uuid.UUID `form:"workout_id"`
	UserID         *uuid.UUID `form:"user_id"`
	MinStartTime   *time.Time `form:"min_start_time"`
	MaxStartTime   *time.Time `form:"max_start_time"`
}

func (p ExerciseParams) Apply(db *gorm.DB) *gorm.DB {
	if p.ID != nil {
		db = db.Where("id = ?", *p.ID)
	}
	if p.ExerciseTypeID != nil {
		db = db.Where("exercise_type_id = ?", *p.ExerciseTypeID)
	}
	if p.WorkoutID != nil {
		db = db.Where("workout_id = ?", *p.WorkoutID)
	}
	if p.UserID != nil {
		db = db.Where("user_id = ?", *p.UserID)
	}
	if p.MinStartTime != nil {
		db = db.Where("start_time > ?", *p.MinStartTime)
	}
	if p.MaxStartTime != nil {
		db = db.Where("start_time < ?", *p.MaxStartTime)
	}
	return db
}

type WorkoutTypeParams struct {
	ID                  *uuid.UUID `form:"id"`
	Name                *string    `form:"name"`
	OwnerUserID         *uuid.UUID `form:"owner_user_id"`
	ParentWorkoutTypeID *uuid.UUID `form:"parent_workout_type_id"`
}

func (p WorkoutTypeParams) Apply(db *gorm.DB) *gorm.DB {
	if p.ID != nil {
		db = db.Where("id = ?", *p.ID)
	}
	if p.Name != nil {
		db = db.Where("name = ?", *p.Name)
	}
	if p.OwnerUserID != nil {
		db = db.Where("owner_user_id = ?", *p.OwnerUserID)
	}
	if p.ParentWorkoutTypeID != nil {
		db = db.Where("parent_workout_type_id = ?", *p.ParentWorkoutTypeID)
	}
	return db
}

type ExerciseTypeParams struct {
	ID          *uuid.UUID `form:"id"`
	Name        *string    `form:"name"`
	OwnerUserID *uuid.UUID `form:"owner_user_id"`
}

func (p ExerciseTypeParams) Apply(db *gorm.DB) *gorm.DB {
	if p.ID != nil {
		db = db.Where("id = ?", *p.ID)
	}
	if p.Name != nil {
		db = db.Where("name = ?", *p.Name)
	}
	if p.OwnerUserID != nil {
		db = db.Where("owner_user_id = ?", *p.OwnerUserID)
	}
	return db
}
