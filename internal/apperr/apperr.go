package apperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors for the failure modes the handlers translate to HTTP
// statuses. NotFound covers both "no such row" and "row invisible to the
// caller" -- the two are deliberately indistinguishable so that private
// records never leak their existence.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrConflict           = errors.New("resource already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// MissingReference identifies one foreign-key reference that does not
// resolve to a record visible to the caller.
type MissingReference struct {
	Kind string    `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

func (m MissingReference) String() string {
	return m.Kind + ":" + m.ID.String()
}

// ValidationError reports a rejected write: bad input shape or references
// that don't exist (or aren't visible) from the caller's point of view.
type ValidationError struct {
	Message string
	Missing []MissingReference
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return e.Message
	}
	refs := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		refs[i] = m.String()
	}
	return fmt.Sprintf("resource(s) not found: (%s)", strings.Join(refs, ", "))
}

func NewMissingReferences(missing []MissingReference) *ValidationError {
	return &ValidationError{Missing: missing}
}
