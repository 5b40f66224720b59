package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitlog-dev/fitlog/internal/lifecycle"
	"github.com/fitlog-dev/fitlog/internal/scope"
	"github.com/fitlog-dev/fitlog/internal/store"
)

type ExerciseHandler struct {
	store  *store.ExerciseStore
	events *lifecycle.Publisher
}

func NewExerciseHandler(db *gorm.DB, events *lifecycle.Publisher) *ExerciseHandler {
	return &ExerciseHandler{store: store.NewExerciseStore(db), events: events}
}

func (h *ExerciseHandler) List(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	q := queryReader{ctx: ctx}
	params := scope.ExerciseParams{
		ID:             q.UUID("id"),
		ExerciseTypeID: q.UUID("exercise_type_id"),
		WorkoutID:      q.UUID("workout_id"),
		UserID:         q.UUID("user_id"),
		MinStartTime:   q.Time("min_start_time"),
		MaxStartTime:   q.Time("max_start_time"),
	}
	if q.err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": q.err.Error()})
		return
	}

	exercises, err := h.store.List(user.ID, params, false)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, exercises)
}

func (h *ExerciseHandler) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	inputs, ok := bindBatch[store.ExerciseInput](ctx)
	if !ok {
		return
	}

	exercises, err := h.store.Create(user.ID, inputs)
	if err != nil {
		respondError(ctx, err)
		return
	}

	for _, exercise := range exercises {
		h.events.Publish(scope.Exercises, lifecycle.ActionCreate, exercise.ID, user.Email)
	}

	ctx.JSON(http.StatusCreated, exercises)
}

func (h *ExerciseHandler) Overwrite(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	id, ok := requiredIDParam(ctx)
	if !ok {
		return
	}

	var input store.ExerciseInput
	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	exercise, err := h.store.Overwrite(user.ID, id, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(scope.Exercises, lifecycle.ActionUpdate, exercise.ID, user.Email)
	ctx.JSON(http.StatusOK, exercise)
}

func (h *ExerciseHandler) Patch(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	id, ok := requiredIDParam(ctx)
	if !ok {
		return
	}

	var patch store.ExercisePatch
	if err := ctx.BindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	exercise, err := h.store.Patch(user.ID, id, patch)
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(scope.Exercises, lifecycle.ActionUpdate, exercise.ID, user.Email)
	ctx.JSON(http.StatusOK, exercise)
}

func (h *ExerciseHandler) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	id, ok := requiredIDParam(ctx)
	if !ok {
		return
	}

	exercise, err := h.store.SoftDelete(user.ID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(scope.Exercises, lifecycle.ActionDelete, exercise.ID, user.Email)
	ctx.JSON(http.StatusOK, exercise)
}
