package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid admin credentials")

// AdminAuthenticator checks the single shared management credential
// against a bcrypt hash. Item and wishlist administration sits behind
// it; there are no individual admin accounts.
type AdminAuthenticator struct {
	passwordHash []byte
}

// NewAdminAuthenticator creates an authenticator for the given bcrypt
// hash, as produced by HashPassword or `htpasswd -B`.
func NewAdminAuthenticator(passwordHash string) *AdminAuthenticator {
	return &AdminAuthenticator{passwordHash: []byte(passwordHash)}
}

// Authenticate verifies the supplied password.
func (a *AdminAuthenticator) Authenticate(password string) error {
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces a bcrypt hash suitable for configuration.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
