package refs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlog-dev/fitlog/internal/models"
	"github.com/fitlog-dev/fitlog/internal/scope"
)

// An empty batch must produce an empty result without touching storage.
// Passing a nil transaction proves no query is issued.
func TestFindMissingEmptyBatch(t *testing.T) {
	missing, err := FindMissing(nil, uuid.New(), map[scope.Kind][]uuid.UUID{})
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestFindMissingEmptyIDSets(t *testing.T) {
	wanted := map[scope.Kind][]uuid.UUID{
		scope.Workouts:     nil,
		scope.WorkoutTypes: {},
	}
	missing, err := FindMissing(nil, uuid.New(), wanted)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestForExercises(t *testing.T) {
	workoutID := uuid.New()
	typeA := uuid.New()
	typeB := uuid.New()

	batch := []models.Exercise{
		{WorkoutID: workoutID, ExerciseTypeID: typeA},
		{WorkoutID: workoutID, ExerciseTypeID: typeB},
	}

	wanted := ForExercises(batch)
	assert.Equal(t, []uuid.UUID{workoutID, workoutID}, wanted[scope.Workouts])
	assert.Equal(t, []uuid.UUID{typeA, typeB}, wanted[scope.ExerciseTypes])
}

func TestForWorkoutsSkipsNilTypes(t *testing.T) {
	typeID := uuid.New()
	batch := []models.Workout{
		{WorkoutTypeID: &typeID},
		{WorkoutTypeID: nil},
	}

	wanted := ForWorkouts(batch)
	assert.Equal(t, []uuid.UUID{typeID}, wanted[scope.WorkoutTypes])
	assert.NotContains(t, wanted, scope.Workouts)
}

func TestForWorkoutTypesSkipsRoots(t *testing.T) {
	parentID := uuid.New()
	batch := []models.WorkoutType{
		{ParentWorkoutTypeID: &parentID},
		{ParentWorkoutTypeID: nil},
	}

	wanted := ForWorkoutTypes(batch)
	assert.Equal(t, []uuid.UUID{parentID}, wanted[scope.WorkoutTypes])
}

func TestForExerciseTypesEmpty(t *testing.T) {
	wanted := ForExerciseTypes([]models.ExerciseType{{Name: "squat"}})
	assert.Empty(t, wanted)
}

func TestDedupe(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.Nil(t, dedupe(nil))
	assert.Equal(t, []uuid.UUID{a, b}, dedupe([]uuid.UUID{a, b, a, b, a}))
}
