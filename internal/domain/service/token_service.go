package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures are distinct inside the service so callers can log
// and test them, but the HTTP boundary collapses all of them into one
// generic 401.
var (
	// ErrTokenInvalid is returned for malformed, unsigned or tampered tokens.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned for an otherwise valid token past its TTL.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims defines the custom claims carried by access tokens. The subject is
// the only claim of consequence: the account identifier.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
// Verification is pure computation: no I/O, no suspension.
type TokenService interface {
	// Issue creates a signed access token for the given account, valid for
	// the configured lifetime from the moment of issuance.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks a token's signature and expiry and returns its claims.
	// It fails with ErrTokenExpired or ErrTokenInvalid.
	Verify(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured token lifetime.
	AccessTokenTTL() time.Duration
}
