package auth

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 24 * time.Hour

var (
	jwtSecret string
	tokenTTL  = defaultTokenTTL
)

func InitJWTSecret() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if ttl := os.Getenv("TOKEN_TTL_MINUTES"); ttl != "" {
		minutes, err := strconv.Atoi(ttl)
		if err != nil || minutes <= 0 {
			return fmt.Errorf("TOKEN_TTL_MINUTES must be a positive integer, got %q", ttl)
		}
		tokenTTL = time.Duration(minutes) * time.Minute
	}

	return nil
}

// TokenTTL reports the configured token lifetime.
func TokenTTL() time.Duration {
	return tokenTTL
}

// GenerateJWT issues a signed token for the given email with an absolute
// expiry ttl from now.
func GenerateJWT(email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// VerifyJWT validates a token and returns the subject email. Every
// failure mode (bad signature, wrong method, missing sub or exp, expired)
// returns the same error; tokens are never partially trusted.
func VerifyJWT(tokenString string) (string, error) {
	invalid := fmt.Errorf("invalid or expired token")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return "", invalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", invalid
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", invalid
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return "", invalid
	}
	if !time.Now().Before(time.Unix(int64(exp), 0)) {
		return "", invalid
	}

	return email, nil
}
