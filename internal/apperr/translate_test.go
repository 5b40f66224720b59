package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateStorageErrorNil(t *testing.T) {
	assert.NoError(t, TranslateStorageError(nil))
}

func TestTranslateStorageErrorNotFound(t *testing.T) {
	err := TranslateStorageError(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTranslateStorageErrorConstraints(t *testing.T) {
	cases := map[string]struct {
		code       string
		validation bool
		conflict   bool
	}{
		"foreign key": {code: "23503", validation: true},
		"not null":    {code: "23502", validation: true},
		"unique":      {code: "23505", conflict: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tc.code, Message: name + " violation"}
			err := TranslateStorageError(fmt.Errorf("insert failed: %w", pgErr))

			if tc.validation {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Error(), name)
			}
			if tc.conflict {
				assert.ErrorIs(t, err, ErrConflict)
			}
		})
	}
}

func TestTranslateStorageErrorUnknownPassesThrough(t *testing.T) {
	unknown := errors.New("connection reset by peer")
	assert.Equal(t, unknown, TranslateStorageError(unknown))

	// Unrecognized postgres codes also pass through untranslated.
	pgErr := &pgconn.PgError{Code: "57014", Message: "query canceled"}
	assert.Equal(t, pgErr, errors.Unwrap(TranslateStorageError(fmt.Errorf("x: %w", pgErr))))
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewMissingReferences([]MissingReference{
		{Kind: "workout", ID: mustUUID(t, "123e4567-e89b-12d3-a456-426655440000")},
	})
	assert.Contains(t, err.Error(), "workout:123e4567-e89b-12d3-a456-426655440000")
}
