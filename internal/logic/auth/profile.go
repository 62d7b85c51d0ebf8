package auth

import (
	"github.com/VinukaThejana/auth-rs/internal/models"
	"github.com/VinukaThejana/auth-rs/internal/token/claims"
)

func profileOf(u *models.User) claims.Profile {
	return claims.Profile{
		UserID:             u.ID,
		Email:              u.Email,
		Username:           u.Username,
		Name:               u.Name,
		PhotoURL:           u.PhotoURL.String,
		IsEmailVerified:    u.IsEmailVerified,
		IsTwoFactorEnabled: u.IsTwoFactorEnabled,
	}
}
