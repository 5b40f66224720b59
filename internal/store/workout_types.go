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

type WorkoutTypeInput struct {
	Name                string     `json:"name" binding:"required"`
	Notes               *string    `json:"notes"`
	ParentWorkoutTypeID *uuid.UUID `json:"parent_workout_type_id"`
}

type WorkoutTypePatch struct {
	Name                types.Optional[string]    `json:"name"`
	Notes               types.Optional[string]    `json:"notes"`
	ParentWorkoutTypeID types.Optional[uuid.UUID] `json:"parent_workout_type_id"`
}

type WorkoutTypeStore struct {
	db *gorm.DB
}

func NewWorkoutTypeStore(db *gorm.DB) *WorkoutTypeStore {
	return &WorkoutTypeStore{db: db}
}

func (s *WorkoutTypeStore) List(userID uuid.UUID, params scope.WorkoutTypeParams, includeDeleted bool) ([]models.WorkoutType, error) {
	var workoutTypes []models.WorkoutType

	err := s.db.
		Scopes(scope.Compose(scope.WorkoutTypes, userID, params, includeDeleted)).
		Find(&workoutTypes).Error
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return workoutTypes, nil
}

// Create inserts a batch of workout types owned by the caller. Parent
// references must be visible to the caller, which is what keeps a
// private type from parenting under another user's subtree.
func (s *WorkoutTypeStore) Create(userID uuid.UUID, inputs []WorkoutTypeInput) ([]models.WorkoutType, error) {
	owner := userID
	records := make([]models.WorkoutType, len(inputs))
	for i, in := range inputs {
		records[i] = models.WorkoutType{
			Name:                in.Name,
			Notes:               in.Notes,
			ParentWorkoutTypeID: in.ParentWorkoutTypeID,
			OwnerUserID:         &owner,
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		missing, err := refs.FindMissing(tx, userID, refs.ForWorkoutTypes(records))
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

// SeedPublic inserts workout types with no owner, visible to everyone.
// Administrative/seed path only; no handler reaches this.
func (s *WorkoutTypeStore) SeedPublic(inputs []WorkoutTypeInput) ([]models.WorkoutType, error) {
	records := make([]models.WorkoutType, len(inputs))
	for i, in := range inputs {
		records[i] = models.WorkoutType{
			Name:                in.Name,
			Notes:               in.Notes,
			ParentWorkoutTypeID: in.ParentWorkoutTypeID,
		}
	}

	if err := s.db.Create(&records).Error; err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return records, nil
}

func (s *WorkoutTypeStore) Overwrite(userID, id uuid.UUID, input WorkoutTypeInput) (*models.WorkoutType, error) {
	var record models.WorkoutType

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedWorkoutType(tx, userID, id, &record); err != nil {
			return err
		}

		record.Name = input.Name
		record.Notes = input.Notes
		record.ParentWorkoutTypeID = input.ParentWorkoutTypeID

		return saveWorkoutType(tx, userID, &record)
	})
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return &record, nil
}

func (s *WorkoutTypeStore) Patch(userID, id uuid.UUID, patch WorkoutTypePatch) (*models.WorkoutType, error) {
	var record models.WorkoutType

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedWorkoutType(tx, userID, id, &record); err != nil {
			return err
		}

		if patch.Name.Set {
			if patch.Name.Value == nil {
				return &apperr.ValidationError{Message: "name cannot be null"}
			}
			record.Name = *patch.Name.Value
		}
		if patch.Notes.Set {
			record.Notes = patch.Notes.Value
		}
		if patch.ParentWorkoutTypeID.Set {
			record.ParentWorkoutTypeID = patch.ParentWorkoutTypeID.Value
		}

		return saveWorkoutType(tx, userID, &record)
	})
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return &record, nil
}

func (s *WorkoutTypeStore) SoftDelete(userID, id uuid.UUID) (*models.WorkoutType, error) {
	var record models.WorkoutType

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedWorkoutType(tx, userID, id, &record); err != nil {
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

// Shareable kinds separate visibility from ownership: a record the
// caller cannot see is not found, a record the caller can see but does
// not own (public, or another owner's public-visible row) is forbidden
// to mutate.
func findOwnedWorkoutType(tx *gorm.DB, userID, id uuid.UUID, record *models.WorkoutType) error {
	err := tx.
		Scopes(scope.Compose(scope.WorkoutTypes, userID, scope.WorkoutTypeParams{ID: &id}, false)).
		First(record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return err
	}
	if record.OwnerUserID == nil || *record.OwnerUserID != userID {
		return apperr.ErrForbidden
	}
	return nil
}

func saveWorkoutType(tx *gorm.DB, userID uuid.UUID, record *models.WorkoutType) error {
	missing, err := refs.FindMissing(tx, userID, refs.ForWorkoutTypes([]models.WorkoutType{*record}))
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return apperr.NewMissingReferences(missing)
	}
	return tx.Save(record).Error
}
