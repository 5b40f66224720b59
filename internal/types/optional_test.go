package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchBody struct {
	Name  Optional[string] `json:"name"`
	Count Optional[int]    `json:"count"`
}

func TestOptionalAbsent(t *testing.T) {
	var body patchBody
	require.NoError(t, json.Unmarshal([]byte(`{}`), &body))

	assert.False(t, body.Name.Set)
	assert.False(t, body.Count.Set)
}

func TestOptionalNull(t *testing.T) {
	var body patchBody
	require.NoError(t, json.Unmarshal([]byte(`{"name": null}`), &body))

	assert.True(t, body.Name.Set)
	assert.Nil(t, body.Name.Value)
	assert.False(t, body.Count.Set)
}

func TestOptionalValue(t *testing.T) {
	var body patchBody
	require.NoError(t, json.Unmarshal([]byte(`{"name": "bench press", "count": 3}`), &body))

	require.True(t, body.Name.Set)
	require.NotNil(t, body.Name.Value)
	assert.Equal(t, "bench press", *body.Name.Value)

	require.True(t, body.Count.Set)
	require.NotNil(t, body.Count.Value)
	assert.Equal(t, 3, *body.Count.Value)
}

func TestOptionalWrongType(t *testing.T) {
	var body patchBody
	assert.Error(t, json.Unmarshal([]byte(`{"count": "three"}`), &body))
}
