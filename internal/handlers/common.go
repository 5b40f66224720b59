package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/fitlog-dev/fitlog/internal/apperr"
	"github.com/fitlog-dev/fitlog/internal/middleware"
)

// respondError maps the core error taxonomy onto HTTP statuses. Unknown
// errors are logged and surfaced as a generic 500; they are never
// silently reinterpreted.
func respondError(ctx *gin.Context, err error) {
	var validationErr *apperr.ValidationError

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		body := gin.H{"error": validationErr.Error()}
		if len(validationErr.Missing) > 0 {
			body["missing_references"] = validationErr.Missing
		}
		ctx.JSON(http.StatusBadRequest, body)
	default:
		log.Printf("Unhandled error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func currentUser(ctx *gin.Context) (middleware.AuthenticatedUser, bool) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
	}
	return user, ok
}

// requiredIDParam reads the id query parameter mutations address records by.
func requiredIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	raw := ctx.Query("id")
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id query parameter is required"})
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return uuid.Nil, false
	}

	return id, true
}

// queryReader accumulates the first parse failure across a handler's
// optional query parameters.
type queryReader struct {
	ctx *gin.Context
	err error
}

func (r *queryReader) UUID(name string) *uuid.UUID {
	if r.err != nil {
		return nil
	}
	v, err := queryUUID(r.ctx, name)
	if err != nil {
		r.err = err
	}
	return v
}

func (r *queryReader) Time(name string) *time.Time {
	if r.err != nil {
		return nil
	}
	v, err := queryTime(r.ctx, name)
	if err != nil {
		r.err = err
	}
	return v
}

func (r *queryReader) String(name string) *string {
	if r.err != nil {
		return nil
	}
	return queryString(r.ctx, name)
}

func queryUUID(ctx *gin.Context, name string) (*uuid.UUID, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.New(name + " must be a valid UUID")
	}
	return &id, nil
}

func queryTime(ctx *gin.Context, name string) (*time.Time, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errors.New(name + " must be an RFC 3339 timestamp")
	}
	return &t, nil
}

func queryString(ctx *gin.Context, name string) *string {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// bindBatch decodes a body that is either a single object or an array of
// objects into a slice, running binding validation either way.
func bindBatch[T any](ctx *gin.Context) ([]T, bool) {
	var inputs []T
	if err := ctx.ShouldBindBodyWith(&inputs, binding.JSON); err == nil {
		if len(inputs) == 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "request body must not be an empty array"})
			return nil, false
		}
		return inputs, true
	}

	var single T
	if err := ctx.ShouldBindBodyWith(&single, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return nil, false
	}

	return []T{single}, true
}
