// Package refs validates foreign-key references before a write commits.
// "Valid" means the referenced row exists AND is visible to the caller,
// checked as one predicate: an existing row owned privately by someone
// else is reported as missing, never revealed.
package refs

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitlog-dev/fitlog/internal/apperr"
	"github.com/fitlog-dev/fitlog/internal/models"
	"github.com/fitlog-dev/fitlog/internal/scope"
)

// Fixed kind order keeps results and error messages deterministic.
var kindOrder = []scope.Kind{
	scope.Workouts,
	scope.WorkoutTypes,
	scope.Exercises,
	scope.ExerciseTypes,
}

// FindMissing returns every (kind, id) pair in wanted that does not
// resolve to a row visible to the user. One round trip per referenced
// kind: the wanted IDs are deduplicated and checked with a single
// set-membership query. An empty ID set issues no query at all.
//
// Soft-deleted referents are still considered present; historical
// records keep pointing at them.
func FindMissing(tx *gorm.DB, userID uuid.UUID, wanted map[scope.Kind][]uuid.UUID) ([]apperr.MissingReference, error) {
	var missing []apperr.MissingReference

	for _, kind := range kindOrder {
		ids := dedupe(wanted[kind])
		if len(ids) == 0 {
			continue
		}

		var found []uuid.UUID
		err := tx.Table(kind.Table).
			Where("id IN ?", ids).
			Scopes(scope.Visible(kind, userID)).
			Pluck("id", &found).Error
		if err != nil {
			return nil, err
		}

		foundSet := make(map[uuid.UUID]struct{}, len(found))
		for _, id := range found {
			foundSet[id] = struct{}{}
		}

		for _, id := range ids {
			if _, ok := foundSet[id]; !ok {
				missing = append(missing, apperr.MissingReference{Kind: kind.Name, ID: id})
			}
		}
	}

	return missing, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ForExercises collects the workout and exercise type references across
// an exercise batch.
func ForExercises(batch []models.Exercise) map[scope.Kind][]uuid.UUID {
	wanted := make(map[scope.Kind][]uuid.UUID)
	for _, ex := range batch {
		wanted[scope.Workouts] = append(wanted[scope.Workouts], ex.WorkoutID)
		wanted[scope.ExerciseTypes] = append(wanted[scope.ExerciseTypes], ex.ExerciseTypeID)
	}
	return wanted
}

// ForWorkouts collects the optional workout type references across a
// workout batch.
func ForWorkouts(batch []models.Workout) map[scope.Kind][]uuid.UUID {
	wanted := make(map[scope.Kind][]uuid.UUID)
	for _, w := range batch {
		if w.WorkoutTypeID != nil {
			wanted[scope.WorkoutTypes] = append(wanted[scope.WorkoutTypes], *w.WorkoutTypeID)
		}
	}
	return wanted
}

// ForWorkoutTypes collects the optional parent references across a
// workout type batch. The parent must be visible to the owner, which is
// what keeps a private node from parenting under another user's subtree.
func ForWorkoutTypes(batch []models.WorkoutType) map[scope.Kind][]uuid.UUID {
	wanted := make(map[scope.Kind][]uuid.UUID)
	for _, wt := range batch {
		if wt.ParentWorkoutTypeID != nil {
			wanted[scope.WorkoutTypes] = append(wanted[scope.WorkoutTypes], *wt.ParentWorkoutTypeID)
		}
	}
	return wanted
}

// ForExerciseTypes exists for symmetry; exercise types reference nothing.
func ForExerciseTypes(batch []models.ExerciseType) map[scope.Kind][]uuid.UUID {
	return make(map[scope.Kind][]uuid.UUID)
}
