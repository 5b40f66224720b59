package apperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes recognized at the transaction boundary.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// TranslateStorageError converts recognized storage failures into the
// client-facing taxonomy. Constraint violations become ValidationError or
// ErrConflict; gorm's not-found becomes ErrNotFound; anything unrecognized
// is returned unchanged so unknown failure modes stay loud.
func TranslateStorageError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgNotNullViolation:
			return &ValidationError{Message: pgErr.Message}
		case pgUniqueViolation:
			return ErrConflict
		}
	}

	return err
}
