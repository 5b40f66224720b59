package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitlog-dev/fitlog/internal/lifecycle"
	"github.com/fitlog-dev/fitlog/internal/scope"
	"github.com/fitlog-dev/fitlog/internal/store"
)

type ExerciseTypeHandler struct {
	store  *store.ExerciseTypeStore
	events *lifecycle.Publisher
}

func NewExerciseTypeHandler(db *gorm.DB, events *lifecycle.Publisher) *ExerciseTypeHandler {
	return &ExerciseTypeHandler{store: store.NewExerciseTypeStore(db), events: events}
}

func (h *ExerciseTypeHandler) List(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	q := queryReader{ctx: ctx}
	params := scope.ExerciseTypeParams{
		ID:          q.UUID("id"),
		Name:        q.String("name"),
		OwnerUserID: q.UUID("owner_user_id"),
	}
	if q.err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": q.err.Error()})
		return
	}

	exerciseTypes, err := h.store.List(user.ID, params, false)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, exerciseTypes)
}

func (h *ExerciseTypeHandler) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	inputs, ok := bindBatch[store.ExerciseTypeInput](ctx)
	if !ok {
		return
	}

	exerciseTypes, err := h.store.Create(user.ID, inputs)
	if err != nil {
		respondError(ctx, err)
		return
	}

	for _, exerciseType := range exerciseTypes {
		h.events.Publish(scope.ExerciseTypes, lifecycle.ActionCreate, exerciseType.ID, user.Email)
	}

	ctx.JSON(http.StatusCreated, exerciseTypes)
}

func (h *ExerciseTypeHandler) Overwrite(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	id, ok := requiredIDParam(ctx)
	if !ok {
		return
	}

	var input store.ExerciseTypeInput
	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	exerciseType, err := h.store.Overwrite(user.ID, id, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(scope.ExerciseTypes, lifecycle.ActionUpdate, exerciseType.ID, user.Email)
	ctx.JSON(http.StatusOK, exerciseType)
}

func (h *ExerciseTypeHandler) Patch(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	id, ok := requiredIDParam(ctx)
	if !ok {
		return
	}

	var patch store.ExerciseTypePatch
	if err := ctx.BindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	exerciseType, err := h.store.Patch(user.ID, id, patch)
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(scope.ExerciseTypes, lifecycle.ActionUpdate, exerciseType.ID, user.Email)
	ctx.JSON(http.StatusOK, exerciseType)
}

func (h *ExerciseTypeHandler) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	id, ok := requiredIDParam(ctx)
	if !ok {
		return
	}

	exerciseType, err := h.store.SoftDelete(user.ID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(scope.ExerciseTypes, lifecycle.ActionDelete, exerciseType.ID, user.Email)
	ctx.JSON(http.StatusOK, exerciseType)
}
