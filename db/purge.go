package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitlog-dev/fitlog/internal/models"
)

// PurgeUser permanently removes a user and everything they own. Children
// go before parents -- exercises first, the user row last -- so foreign
// keys are never left dangling mid-purge. Each step commits on its own;
// the ordering, not atomicity, is the invariant.
//
// Returns the total number of rows removed, including the user row.
// Administrative/test tooling only; nothing routes here.
func PurgeUser(gdb *gorm.DB, userID uuid.UUID) (int64, error) {
	steps := []struct {
		column string
		model  interface{}
	}{
		{"user_id", &models.Exercise{}},
		{"owner_user_id", &models.ExerciseType{}},
		{"user_id", &models.Workout{}},
		{"owner_user_id", &models.WorkoutType{}},
		{"id", &models.User{}},
	}

	var total int64
	for _, step := range steps {
		result := gdb.Where(step.column+" = ?", userID).Delete(step.model)
		if result.Error != nil {
			return total, result.Error
		}
		total += result.RowsAffected
	}

	return total, nil
}
