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

type ExerciseInput struct {
	StartTime      *time.Time `json:"start_time"`
	Weight         *float64   `json:"weight"`
	WeightUnit     *string    `json:"weight_unit" binding:"omitempty,oneof=kg lb"`
	Reps           *int       `json:"reps"`
	Seconds        *int       `json:"seconds"`
	Notes          *string    `json:"notes"`
	ExerciseTypeID uuid.UUID  `json:"exercise_type_id" binding:"required"`
	WorkoutID      uuid.UUID  `json:"workout_id" binding:"required"`
}

type ExercisePatch struct {
	StartTime      types.Optional[time.Time] `json:"start_time"`
	Weight         types.Optional[float64]   `json:"weight"`
	WeightUnit     types.Optional[string]    `json:"weight_unit"`
	Reps           types.Optional[int]       `json:"reps"`
	Seconds        types.Optional[int]       `json:"seconds"`
	Notes          types.Optional[string]    `json:"notes"`
	ExerciseTypeID types.Optional[uuid.UUID] `json:"exercise_type_id"`
	WorkoutID      types.Optional[uuid.UUID] `json:"workout_id"`
}

type ExerciseStore struct {
	db *gorm.DB
}

func NewExerciseStore(db *gorm.DB) *ExerciseStore {
	return &ExerciseStore{db: db}
}

func (s *ExerciseStore) List(userID uuid.UUID, params scope.ExerciseParams, includeDeleted bool) ([]models.Exercise, error) {
	var exercises []models.Exercise

	err := s.db.
		Scopes(scope.Compose(scope.Exercises, userID, params, includeDeleted)).
		Find(&exercises).Error
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return exercises, nil
}

// Create inserts a batch of exercises owned by the caller. The batch's
// workout and exercise type references are validated with one query per
// kind; any missing reference rejects the whole batch.
func (s *ExerciseStore) Create(userID uuid.UUID, inputs []ExerciseInput) ([]models.Exercise, error) {
	records := make([]models.Exercise, len(inputs))
	for i, in := range inputs {
		records[i] = models.Exercise{
			StartTime:      in.StartTime,
			Weight:         in.Weight,
			WeightUnit:     in.WeightUnit,
			Reps:           in.Reps,
			Seconds:        in.Seconds,
			Notes:          in.Notes,
			ExerciseTypeID: in.ExerciseTypeID,
			WorkoutID:      in.WorkoutID,
			UserID:         userID,
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		missing, err := refs.FindMissing(tx, userID, refs.ForExercises(records))
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

func (s *ExerciseStore) Overwrite(userID, id uuid.UUID, input ExerciseInput) (*models.Exercise, error) {
	var record models.Exercise

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedExercise(tx, userID, id, &record); err != nil {
			return err
		}

		record.StartTime = input.StartTime
		record.Weight = input.Weight
		record.WeightUnit = input.WeightUnit
		record.Reps = input.Reps
		record.Seconds = input.Seconds
		record.Notes = input.Notes
		record.ExerciseTypeID = input.ExerciseTypeID
		record.WorkoutID = input.WorkoutID

		return saveExercise(tx, userID, &record)
	})
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return &record, nil
}

func (s *ExerciseStore) Patch(userID, id uuid.UUID, patch ExercisePatch) (*models.Exercise, error) {
	var record models.Exercise

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedExercise(tx, userID, id, &record); err != nil {
			return err
		}

		if patch.StartTime.Set {
			record.StartTime = patch.StartTime.Value
		}
		if patch.Weight.Set {
			record.Weight = patch.Weight.Value
		}
		if patch.WeightUnit.Set {
			record.WeightUnit = patch.WeightUnit.Value
		}
		if patch.Reps.Set {
			record.Reps = patch.Reps.Value
		}
		if patch.Seconds.Set {
			record.Seconds = patch.Seconds.Value
		}
		if patch.Notes.Set {
			record.Notes = patch.Notes.Value
		}
		if patch.ExerciseTypeID.Set {
			if patch.ExerciseTypeID.Value == nil {
				return &apperr.ValidationError{Message: "exercise_type_id cannot be null"}
			}
			record.ExerciseTypeID = *patch.ExerciseTypeID.Value
		}
		if patch.WorkoutID.Set {
			if patch.WorkoutID.Value == nil {
				return &apperr.ValidationError{Message: "workout_id cannot be null"}
			}
			record.WorkoutID = *patch.WorkoutID.Value
		}

		return saveExercise(tx, userID, &record)
	})
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return &record, nil
}

func (s *ExerciseStore) SoftDelete(userID, id uuid.UUID) (*models.Exercise, error) {
	var record models.Exercise

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedExercise(tx, userID, id, &record); err != nil {
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

func findOwnedExercise(tx *gorm.DB, userID, id uuid.UUID, record *models.Exercise) error {
	err := tx.
		Scopes(scope.Compose(scope.Exercises, userID, scope.ExerciseParams{ID: &id}, false)).
		First(record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return err
}

func saveExercise(tx *gorm.DB, userID uuid.UUID, record *models.Exercise) error {
	missing, err := refs.FindMissing(tx, userID, refs.ForExercises([]models.Exercise{*record}))
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return apperr.NewMissingReferences(missing)
	}
	return tx.Save(record).Error
}
