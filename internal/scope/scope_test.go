package scope_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fitlog-dev/fitlog/internal/models"
	"github.com/fitlog-dev/fitlog/internal/scope"
)

// dryRunDB builds queries without a live database so the composed SQL
// can be inspected.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=fitlog dbname=fitlog",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return gdb
}

func workoutSQL(t *testing.T, gdb *gorm.DB, userID uuid.UUID, params scope.Params, includeDeleted bool) (string, []interface{}) {
	t.Helper()

	var workouts []models.Workout
	tx := gdb.
		Scopes(scope.Compose(scope.Workouts, userID, params, includeDeleted)).
		Find(&workouts)
	require.NoError(t, tx.Error)

	return tx.Statement.SQL.String(), tx.Statement.Vars
}

func TestComposeStrictKindVisibility(t *testing.T) {
	gdb := dryRunDB(t)
	userID := uuid.New()

	sql, vars := workoutSQL(t, gdb, userID, scope.WorkoutParams{}, false)

	assert.Contains(t, sql, "user_id = $")
	assert.Contains(t, sql, "deleted_at IS NULL")
	assert.NotContains(t, sql, "owner_user_id")
	assert.Contains(t, vars, userID)
}

func TestComposeShareableKindVisibility(t *testing.T) {
	gdb := dryRunDB(t)
	userID := uuid.New()

	var workoutTypes []models.WorkoutType
	tx := gdb.
		Scopes(scope.Compose(scope.WorkoutTypes, userID, scope.WorkoutTypeParams{}, false)).
		Find(&workoutTypes)
	require.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "owner_user_id = $")
	assert.Contains(t, sql, "owner_user_id IS NULL")
	assert.Contains(t, sql, "deleted_at IS NULL")
}

func TestComposeIncludeDeleted(t *testing.T) {
	gdb := dryRunDB(t)

	sql, _ := workoutSQL(t, gdb, uuid.New(), scope.WorkoutParams{}, true)
	assert.NotContains(t, sql, "deleted_at IS NULL")
}

func TestComposeUnsetParamsAddNoConstraints(t *testing.T) {
	gdb := dryRunDB(t)

	sql, _ := workoutSQL(t, gdb, uuid.New(), scope.WorkoutParams{}, false)

	assert.NotContains(t, sql, "status")
	assert.NotContains(t, sql, "start_time")
	assert.NotContains(t, sql, "workout_type_id")
}

func TestComposeRangeBoundsAreExclusive(t *testing.T) {
	gdb := dryRunDB(t)

	min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	params := scope.WorkoutParams{MinStartTime: &min, MaxStartTime: &max}

	sql, vars := workoutSQL(t, gdb, uuid.New(), params, false)

	assert.Contains(t, sql, "start_time > $")
	assert.Contains(t, sql, "start_time < $")
	assert.NotContains(t, sql, ">=")
	assert.NotContains(t, sql, "<=")
	assert.Contains(t, vars, min)
	assert.Contains(t, vars, max)
}

func TestComposeEqualityParams(t *testing.T) {
	gdb := dryRunDB(t)

	id := uuid.New()
	status := models.WorkoutStatusCompleted
	params := scope.WorkoutParams{ID: &id, Status: &status}

	sql, vars := workoutSQL(t, gdb, uuid.New(), params, false)

	assert.Contains(t, sql, "id = $")
	assert.Contains(t, sql, "status = $")
	assert.Contains(t, vars, id)
	assert.Contains(t, vars, status)
}

// A caller-supplied user_id filter narrows the result set but the
// visibility predicate still applies: filtering on someone else's ID
// composes both conditions and matches nothing.
func TestComposeVisibilityNotBypassable(t *testing.T) {
	gdb := dryRunDB(t)

	caller := uuid.New()
	other := uuid.New()
	params := scope.WorkoutParams{UserID: &other}

	sql, vars := workoutSQL(t, gdb, caller, params, false)

	assert.Equal(t, 2, strings.Count(sql, "user_id = $"))
	assert.Contains(t, vars, caller)
	assert.Contains(t, vars, other)
}
