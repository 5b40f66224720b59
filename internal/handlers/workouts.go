package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitlog-dev/fitlog/internal/lifecycle"
	"github.com/fitlog-dev/fitlog/internal/scope"
	"github.com/fitlog-dev/fitlog/internal/store"
)

type WorkoutHandler struct {
	store  *store.WorkoutStore
	events *lifecycle.Publisher
}

func NewWorkoutHandler(db *gorm.DB, events *lifecycle.Publisher) *WorkoutHandler {
	return &WorkoutHandler{store: store.NewWorkoutStore(db), events: events}
}

func (h *WorkoutHandler) List(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	q := queryReader{ctx: ctx}
	params := scope.WorkoutParams{
		ID:            q.UUID("id"),
		Status:        q.String("status"),
		WorkoutTypeID: q.UUID("workout_type_id"),
		UserID:        q.UUID("user_id"),
		MinStartTime:  q.Time("min_start_time"),
		MaxStartTime:  q.Time("max_start_time"),
		MinEndTime:    q.Time("min_end_time"),
		MaxEndTime:    q.Time("max_end_time"),
	}
	if q.err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": q.err.Error()})
		return
	}

	workouts, err := h.store.List(user.ID, params, false)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, workouts)
}

func (h *WorkoutHandler) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	inputs, ok := bindBatch[store.WorkoutInput](ctx)
	if !ok {
		return
	}

	workouts, err := h.store.Create(user.ID, inputs)
	if err != nil {
		respondError(ctx, err)
		return
	}

	for _, workout := range workouts {
		h.events.Publish(scope.Workouts, lifecycle.ActionCreate, workout.ID, user.Email)
	}

	ctx.JSON(http.StatusCreated, workouts)
}

func (h *WorkoutHandler) Overwrite(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	id, ok := requiredIDParam(ctx)
	if !ok {
		return
	}

	var input store.WorkoutInput
	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	workout, err := h.store.Overwrite(user.ID, id, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(scope.Workouts, lifecycle.ActionUpdate, workout.ID, user.Email)
	ctx.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) Patch(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	id, ok := requiredIDParam(ctx)
	if !ok {
		return
	}

	var patch store.WorkoutPatch
	if err := ctx.BindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	workout, err := h.store.Patch(user.ID, id, patch)
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(scope.Workouts, lifecycle.ActionUpdate, workout.ID, user.Email)
	ctx.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	id, ok := requiredIDParam(ctx)
	if !ok {
		return
	}

	workout, err := h.store.SoftDelete(user.ID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(scope.Workouts, lifecycle.ActionDelete, workout.ID, user.Email)
	ctx.JSON(http.StatusOK, workout)
}
