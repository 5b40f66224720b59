package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitlog-dev/fitlog/internal/apperr"
	"github.com/fitlog-dev/fitlog/internal/models"
	"github.com/fitlog-dev/fitlog/internal/scope"
	"github.com/fitlog-dev/fitlog/internal/types"
)

type ExerciseTypeInput struct {
	Name            string  `json:"name" binding:"required"`
	NumberOfWeights *int    `json:"number_of_weights" binding:"omitempty,min=0"`
	Notes           *string `json:"notes"`
}

type ExerciseTypePatch struct {
	Name            types.Optional[string] `json:"name"`
	NumberOfWeights types.Optional[int]    `json:"number_of_weights"`
	Notes           types.Optional[string] `json:"notes"`
}

// ExerciseTypeStore follows the same workflow as the other kinds but has
// no outgoing references, so there is nothing to validate before a write.
type ExerciseTypeStore struct {
	db *gorm.DB
}

func NewExerciseTypeStore(db *gorm.DB) *ExerciseTypeStore {
	return &ExerciseTypeStore{db: db}
}

func (s *ExerciseTypeStore) List(userID uuid.UUID, params scope.ExerciseTypeParams, includeDeleted bool) ([]models.ExerciseType, error) {
	var exerciseTypes []models.ExerciseType

	err := s.db.
		Scopes(scope.Compose(scope.ExerciseTypes, userID, params, includeDeleted)).
		Find(&exerciseTypes).Error
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return exerciseTypes, nil
}

func (s *ExerciseTypeStore) Create(userID uuid.UUID, inputs []ExerciseTypeInput) ([]models.ExerciseType, error) {
	owner := userID
	records := make([]models.ExerciseType, len(inputs))
	for i, in := range inputs {
		records[i] = models.ExerciseType{
			Name:            in.Name,
			NumberOfWeights: defaultWeights(in.NumberOfWeights),
			Notes:           in.Notes,
			OwnerUserID:     &owner,
		}
	}

	if err := s.db.Create(&records).Error; err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return records, nil
}

// SeedPublic inserts exercise types with no owner, visible to everyone.
// Administrative/seed path only.
func (s *ExerciseTypeStore) SeedPublic(inputs []ExerciseTypeInput) ([]models.ExerciseType, error) {
	records := make([]models.ExerciseType, len(inputs))
	for i, in := range inputs {
		records[i] = models.ExerciseType{
			Name:            in.Name,
			NumberOfWeights: defaultWeights(in.NumberOfWeights),
			Notes:           in.Notes,
		}
	}

	if err := s.db.Create(&records).Error; err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return records, nil
}

func (s *ExerciseTypeStore) Overwrite(userID, id uuid.UUID, input ExerciseTypeInput) (*models.ExerciseType, error) {
	var record models.ExerciseType

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedExerciseType(tx, userID, id, &record); err != nil {
			return err
		}

		record.Name = input.Name
		record.NumberOfWeights = defaultWeights(input.NumberOfWeights)
		record.Notes = input.Notes

		return tx.Save(&record).Error
	})
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return &record, nil
}

func (s *ExerciseTypeStore) Patch(userID, id uuid.UUID, patch ExerciseTypePatch) (*models.ExerciseType, error) {
	var record models.ExerciseType

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedExerciseType(tx, userID, id, &record); err != nil {
			return err
		}

		if patch.Name.Set {
			if patch.Name.Value == nil {
				return &apperr.ValidationError{Message: "name cannot be null"}
			}
			record.Name = *patch.Name.Value
		}
		if patch.NumberOfWeights.Set {
			if patch.NumberOfWeights.Value == nil {
				return &apperr.ValidationError{Message: "number_of_weights cannot be null"}
			}
			record.NumberOfWeights = *patch.NumberOfWeights.Value
		}
		if patch.Notes.Set {
			record.Notes = patch.Notes.Value
		}

		return tx.Save(&record).Error
	})
	if err != nil {
		return nil, apperr.TranslateStorageError(err)
	}

	return &record, nil
}

func (s *ExerciseTypeStore) SoftDelete(userID, id uuid.UUID) (*models.ExerciseType, error) {
	var record models.ExerciseType

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedExerciseType(tx, userID, id, &record); err != nil {
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

func findOwnedExerciseType(tx *gorm.DB, userID, id uuid.UUID, record *models.ExerciseType) error {
	err := tx.
		Scopes(scope.Compose(scope.ExerciseTypes, userID, scope.ExerciseTypeParams{ID: &id}, false)).
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

// Omitted weight counts default to 1, matching the column default.
func defaultWeights(n *int) int {
	if n == nil {
		return 1
	}
	return *n
}
