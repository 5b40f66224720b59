package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("someone@example.com", "hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, CheckPassword("someone@example.com", "hunter2hunter2", hash))
	assert.False(t, CheckPassword("someone@example.com", "wrong-password", hash))
}

func TestCheckPasswordEmailCaseInsensitive(t *testing.T) {
	hash, err := HashPassword("Someone@Example.COM", "hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, CheckPassword("someone@example.com", "hunter2hunter2", hash))
	assert.True(t, CheckPassword("SOMEONE@EXAMPLE.COM", "hunter2hunter2", hash))
}

func TestHashBoundToEmail(t *testing.T) {
	// Two accounts with the same password must not accept each other's
	// credentials: the email is folded into the hash input.
	hash, err := HashPassword("first@example.com", "shared-password")
	require.NoError(t, err)

	assert.False(t, CheckPassword("second@example.com", "shared-password", hash))
}
