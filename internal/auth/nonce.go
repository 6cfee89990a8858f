// Package auth provides the anti-forgery nonce for the reservation
// endpoint and the shared admin credential for management endpoints.
// There is no per-visitor identity; reservers are free-text names.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidNonce = errors.New("invalid or expired nonce")
	ErrMissingNonce = errors.New("nonce required")
)

// nonceAction ties tokens to the availability-update endpoint so a
// token minted here cannot be replayed against anything else.
const nonceAction = "gift-availability"

// NonceManager issues and verifies the shared anti-forgery token that
// must accompany every availability update. The token is an HMAC-signed
// JWT with a short lifetime; no state is kept server-side.
type NonceManager struct {
	secretKey []byte
	ttl       time.Duration
}

// nonceClaims is the payload of a nonce token.
type nonceClaims struct {
	Action string `json:"action"`
	jwt.RegisteredClaims
}

// NewNonceManager creates a nonce manager with the given secret and
// token lifetime. secretKey should be a strong random string
// (e.g., 32 bytes); ttl is how long issued nonces stay valid.
func NewNonceManager(secretKey string, ttl time.Duration) *NonceManager {
	return &NonceManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// Issue creates a new nonce token.
func (m *NonceManager) Issue() (string, error) {
	now := time.Now()
	claims := &nonceClaims{
		Action: nonceAction,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign nonce: %w", err)
	}
	return signed, nil
}

// Verify checks a nonce token. It returns ErrMissingNonce for an empty
// token and ErrInvalidNonce for anything that fails to parse, carries
// the wrong action, or has expired.
func (m *NonceManager) Verify(tokenString string) error {
	if tokenString == "" {
		return ErrMissingNonce
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&nonceClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// Verify the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNonce, err)
	}

	claims, ok := token.Claims.(*nonceClaims)
	if !ok || !token.Valid || claims.Action != nonceAction {
		return ErrInvalidNonce
	}
	return nil
}
