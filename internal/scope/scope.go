// Package scope builds the query predicates that decide which rows a
// caller may read. Every read and every mutation lookup goes through
// Compose, so the visibility rule lives in exactly one place.
package scope

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kind describes one resource kind to the predicate builders. Shareable
// kinds support a nil owner, meaning public.
type Kind struct {
	Name      string
	Table     string
	Shareable bool
}

var (
	Workouts      = Kind{Name: "workout", Table: "workouts", Shareable: false}
	Exercises     = Kind{Name: "exercise", Table: "exercises", Shareable: false}
	WorkoutTypes  = Kind{Name: "workout_type", Table: "workout_types", Shareable: true}
	ExerciseTypes = Kind{Name: "exercise_type", Table: "exercise_types", Shareable: true}
)

// Params is implemented by the per-kind filter structs. Unset (nil)
// fields contribute no constraint.
type Params interface {
	Apply(db *gorm.DB) *gorm.DB
}

// Visible limits a query to the rows the given user may read: owned rows
// for strictly-owned kinds, owned-or-public rows for shareable kinds.
func Visible(kind Kind, userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if kind.Shareable {
			return db.Where("(owner_user_id = ? OR owner_user_id IS NULL)", userID)
		}
		return db.Where("user_id = ?", userID)
	}
}

// NotDeleted excludes soft-deleted rows.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// Compose combines caller-supplied filters with the visibility predicate
// and, unless includeDeleted is set, the not-soft-deleted filter. The
// visibility predicate is never optional; params can narrow the result
// set but never widen it past what the caller may read.
func Compose(kind Kind, userID uuid.UUID, params Params, includeDeleted bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params != nil {
			db = params.Apply(db)
		}
		db = Visible(kind, userID)(db)
		if !includeDeleted {
			db = NotDeleted()(db)
		}
		return db
	}
}
