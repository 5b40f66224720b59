package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fitlog-dev/fitlog/internal/apperr"
	"github.com/fitlog-dev/fitlog/internal/models"
)

// Passwords are hashed together with the lowercased email, so a
// changed-case email matches the same account and two accounts sharing a
// password never share a hash.

func HashPassword(email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(strings.ToLower(email)+password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(email, password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(strings.ToLower(email)+password))
	return err == nil
}

// Authenticate returns the user for an email/password pair. An unknown
// email and a wrong password fail identically with ErrInvalidCredentials.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(email, password, user.PasswordHash) {
		return nil, apperr.ErrInvalidCredentials
	}

	return &user, nil
}
