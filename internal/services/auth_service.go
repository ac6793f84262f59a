package services

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "depotlens/internal/errors"
)

// authService authenticates the single portfolio owner against a bcrypt hash.
type authService struct {
	passwordHash []byte
}

// NewAuthService creates a new AuthServicer. An empty hash disables authentication.
func NewAuthService(passwordHash string) AuthServicer {
	return &authService{passwordHash: []byte(passwordHash)}
}

// Enabled reports whether an owner password is configured.
func (s *authService) Enabled() bool {
	return len(s.passwordHash) > 0
}

// VerifyPassword checks password against the configured hash.
func (s *authService) VerifyPassword(password string) error {
	if !s.Enabled() {
		return apperrors.ErrAuthNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}
