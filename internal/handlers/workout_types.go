package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitlog-dev/fitlog/internal/lifecycle"
	"github.com/fitlog-dev/fitlog/internal/scope"
	"github.com/fitlog-dev/fitlog/internal/store"
)

type WorkoutTypeHandler struct {
	store  *store.WorkoutTypeStore
	events *lifecycle.Publisher
}

func NewWorkoutTypeHandler(db *gorm.DB, events *lifecycle.Publisher) *WorkoutTypeHandler {
	return &WorkoutTypeHandler{store: store.NewWorkoutTypeStore(db), events: events}
}

func (h *WorkoutTypeHandler) List(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	q := queryReader{ctx: ctx}
	params := scope.WorkoutTypeParams{
		ID:                  q.UUID("id"),
		Name:                q.String("name"),
		OwnerUserID:         q.UUID("owner_user_id"),
		ParentWorkoutTypeID: q.UUID("parent_workout_type_id"),
	}
	if q.err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": q.err.Error()})
		return
	}

	workoutTypes, err := h.store.List(user.ID, params, false)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, workoutTypes)
}

func (h *WorkoutTypeHandler) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	inputs, ok := bindBatch[store.WorkoutTypeInput](ctx)
	if !ok {
		return
	}

	workoutTypes, err := h.store.Create(user.ID, inputs)
	if err != nil {
		respondError(ctx, err)
		return
	}

	for _, workoutType := range workoutTypes {
		h.events.Publish(scope.WorkoutTypes, lifecycle.ActionCreate, workoutType.ID, user.Email)
	}

	ctx.JSON(http.StatusCreated, workoutTypes)
}

func (h *WorkoutTypeHandler) Overwrite(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	id, ok := requiredIDParam(ctx)
	if !ok {
		return
	}

	var input store.WorkoutTypeInput
	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	workoutType, err := h.store.Overwrite(user.ID, id, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(scope.WorkoutTypes, lifecycle.ActionUpdate, workoutType.ID, user.Email)
	ctx.JSON(http.StatusOK, workoutType)
}

func (h *WorkoutTypeHandler) Patch(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	id, ok := requiredIDParam(ctx)
	if !ok {
		return
	}

	var patch store.WorkoutTypePatch
	if err := ctx.BindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	workoutType, err := h.store.Patch(user.ID, id, patch)
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(scope.WorkoutTypes, lifecycle.ActionUpdate, workoutType.ID, user.Email)
	ctx.JSON(http.StatusOK, workoutType)
}

func (h *WorkoutTypeHandler) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	id, ok := requiredIDParam(ctx)
	if !ok {
		return
	}

	workoutType, err := h.store.SoftDelete(user.ID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(scope.WorkoutTypes, lifecycle.ActionDelete, workoutType.ID, user.Email)
	ctx.JSON(http.StatusOK, workoutType)
}
