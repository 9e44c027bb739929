package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/khata-ledger/backend/internal/application/adapter"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

const sessionSubject = "khata-admin"

// tokenService implements the adapter.TokenService interface with HS256
// JWTs. There is a single operator, so tokens carry no user identity beyond
// the fixed subject.
type tokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, lifetime time.Duration) adapter.TokenService {
	return &tokenService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// GenerateSessionToken issues a signed session token.
func (s *tokenService) GenerateSessionToken(_ context.Context) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.lifetime)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    "khata-ledger",
		Subject:   sessionSubject,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// ValidateSessionToken validates a session token and returns its claims.
func (s *tokenService) ValidateSessionToken(_ context.Context, tokenString string) (*adapter.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject != sessionSubject {
		return nil, domainerror.ErrInvalidToken
	}

	return &adapter.SessionClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
