package adapter

import (
	"context"
	"time"
)

// SessionClaims represents the claims contained in a session token.
type SessionClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenService defines the interface for session token operations.
type TokenService interface {
	// GenerateSessionToken issues a signed session token after a successful
	// PIN unlock.
	GenerateSessionToken(ctx context.Context) (string, time.Time, error)

	// ValidateSessionToken validates a session token and returns its claims.
	ValidateSessionToken(ctx context.Context, token string) (*SessionClaims, error)
}
