package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL_MINUTES", "")
	require.NoError(t, InitJWTSecret())
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	initTestSecret(t)

	token, err := GenerateJWT("someone@example.com", time.Hour)
	require.NoError(t, err)

	email, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "someone@example.com", email)
}

func TestVerifyJWTExpired(t *testing.T) {
	initTestSecret(t)

	token, err := GenerateJWT("someone@example.com", 1*time.Second)
	require.NoError(t, err)

	time.Sleep(2 * time.Second)

	_, err = VerifyJWT(token)
	assert.Error(t, err)
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	initTestSecret(t)

	claims := jwt.MapClaims{
		"sub": "someone@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = VerifyJWT(forged)
	assert.Error(t, err)
}

func TestVerifyJWTMissingClaims(t *testing.T) {
	initTestSecret(t)

	cases := map[string]jwt.MapClaims{
		"no sub":    {"exp": time.Now().Add(time.Hour).Unix()},
		"no exp":    {"sub": "someone@example.com"},
		"empty sub": {"sub": "", "exp": time.Now().Add(time.Hour).Unix()},
	}

	for name, claims := range cases {
		t.Run(name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
			require.NoError(t, err)

			_, err = VerifyJWT(token)
			assert.Error(t, err)
		})
	}
}

func TestVerifyJWTMalformed(t *testing.T) {
	initTestSecret(t)

	_, err := VerifyJWT("not-a-token")
	assert.Error(t, err)
}

func TestInitJWTSecretMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, InitJWTSecret())
}

func TestInitJWTSecretBadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL_MINUTES", "zero")
	assert.Error(t, InitJWTSecret())
}
