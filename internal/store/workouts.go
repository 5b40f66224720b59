package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitlog-dev/fitlog/internal/apperr"
	"github.com/fitlog-dev/fitlog/internal/models"
	"github.com/fitlog-dev/fitlog/internal/refs"
	"github.com/fitlog-dev/fitlog/internal/scope"
	"github.com/fitlog-dev/fitlog/internal/types"
)

type WorkoutInput struct {
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	Status        string     `json:"status" binding:"required,oneof=in-progress paused completed"`
	Notes         *string    `json:"notes"`
	WorkoutTypeID *uuid.UUID `json:"workout_type_id"`
}

type WorkoutPatch struct {
	StartTime     types.Optional[time.Time] `json:"start_time"`
	EndTime       types.Optional[time.Time] `json:"end_time"`
	Status        types.Optional[string]    `json:"status"`
	Notes         types.Optional[string]    `json:"notes"`
	WorkoutTypeID types.Optional[uuid.UUID] `json:"workout_type_id"`
}

type WorkoutStore struct {
	db *gorm.DB
}

func NewWorkoutStore(db *gorm.DB) *WorkoutStore {
	return &WorkoutStore{db: db}
}

func (s *WorkoutStore) List(userID uuid.UUID, params scope.WorkoutParams, includeDeleted bool) ([]models.Workout, error) {
	var workouts []models.Workout

	err := s.db.
		Scopes(scope.Compose(scope.Workouts, userID, params, includeDeleted)).
		Find(&workouts).Error
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return workouts, nil
}

// Create inserts a batch of workouts owned by the caller. Reference
// validation and the insert share one transaction, so a referenced type
// cannot vanish between the check and the commit. All-or-nothing.
func (s *WorkoutStore) Create(userID uuid.UUID, inputs []WorkoutInput) ([]models.Workout, error) {
	records := make([]models.Workout, len(inputs))
	for i, in := range inputs {
		records[i] = models.Workout{
			StartTime:     in.StartTime,
			EndTime:       in.EndTime,
			Status:        in.Status,
			Notes:         in.Notes,
			WorkoutTypeID: in.WorkoutTypeID,
			UserID:        userID,
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		missing, err := refs.FindMissing(tx, userID, refs.ForWorkouts(records))
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return apperr.NewMissingReferences(missing)
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return records, nil
}

// Overwrite replaces every mutable field of the workout. The lookup is
// visibility-scoped, so a workout the caller cannot see reads as not
// found rather than leaking a permission error.
func (s *WorkoutStore) Overwrite(userID, id uuid.UUID, input WorkoutInput) (*models.Workout, error) {
	var record models.Workout

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedWorkout(tx, userID, id, &record); err != nil {
			return err
		}

		record.StartTime = input.StartTime
		record.EndTime = input.EndTime
		record.Status = input.Status
		record.Notes = input.Notes
		record.WorkoutTypeID = input.WorkoutTypeID

		return saveWorkout(tx, userID, &record)
	})
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return &record, nil
}

// Patch mutates only the fields present in the request. An explicit null
// clears a nullable field; null on status is rejected since workouts
// always have one.
func (s *WorkoutStore) Patch(userID, id uuid.UUID, patch WorkoutPatch) (*models.Workout, error) {
	var record models.Workout

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedWorkout(tx, userID, id, &record); err != nil {
			return err
		}

		if patch.StartTime.Set {
			record.StartTime = patch.StartTime.Value
		}
		if patch.EndTime.Set {
			record.EndTime = patch.EndTime.Value
		}
		if patch.Status.Set {
			if patch.Status.Value == nil {
				return &apperr.ValidationError{Message: "status cannot be null"}
			}
			record.Status = *patch.Status.Value
		}
		if patch.Notes.Set {
			record.Notes = patch.Notes.Value
		}
		if patch.WorkoutTypeID.Set {
			record.WorkoutTypeID = patch.WorkoutTypeID.Value
		}

		return saveWorkout(tx, userID, &record)
	})
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return &record, nil
}

// SoftDelete stamps the workout's deletion time. The row stays in place
// for historical exercise references and include-deleted queries.
func (s *WorkoutStore) SoftDelete(userID, id uuid.UUID) (*models.Workout, error) {
	var record models.Workout

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedWorkout(tx, userID, id, &record); err != nil {
			return err
		}

		now := time.Now().UTC()
		record.DeletedAt = &now
		return tx.Save(&record).Error
	})
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return &record, nil
}

// Workouts are strictly owned: visibility already limits the lookup to
// the caller's rows, so there is no separate ownership check and no
// forbidden outcome on this kind.
func findOwnedWorkout(tx *gorm.DB, userID, id uuid.UUID, record *models.Workout) error {
	err := tx.
		Scopes(scope.Compose(scope.Workouts, userID, scope.WorkoutParams{ID: &id}, false)).
		First(record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return err
}

func saveWorkout(tx *gorm.DB, userID uuid.UUID, record *models.Workout) error {
	missing, err := refs.FindMissing(tx, userID, refs.ForWorkouts([]models.Workout{*record}))
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return apperr.NewMissingReferences(missing)
	}
	return tx.Save(record).Error
}
