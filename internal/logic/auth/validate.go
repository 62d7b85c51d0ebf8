package auth

import (
	"net/mail"
	"regexp"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return apperr.NewValidation(map[string]string{"email": "not a valid email address"})
	}
	return nil
}

func validateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return apperr.NewValidation(map[string]string{"username": "must be 3-32 characters of letters, digits or underscore"})
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return apperr.NewValidation(map[string]string{"password": "must be at least 8 characters"})
	}
	return nil
}
