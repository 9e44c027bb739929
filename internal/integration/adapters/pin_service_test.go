package adapters

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

func TestPinServiceRoundTrip(t *testing.T) {
	svc := NewPinService()

	hash, err := svc.HashPin("1234")
	require.NoError(t, err)
	require.Contains(t, hash, "$")

	ok, err := svc.VerifyPin("1234", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.VerifyPin("4321", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPinServiceSaltsEveryHash(t *testing.T) {
	svc := NewPinService()

	h1, err := svc.HashPin("1234")
	require.NoError(t, err)
	h2, err := svc.HashPin("1234")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestPinServiceVerifiesLegacyFormat(t *testing.T) {
	svc := NewPinService()

	// salt$hash hex, exactly what earlier releases stored.
	hash, err := svc.HashPin("0000")
	require.NoError(t, err)
	parts := strings.Split(hash, "$")
	require.Len(t, parts, 2)
	require.Len(t, parts[0], 2*pinSaltLength)
	require.Len(t, parts[1], 2*pinKeyLength)

	_, err = svc.VerifyPin("0000", "not-a-hash")
	require.Error(t, err)
}

func TestTokenServiceRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 24*time.Hour)

	token, expiresAt, err := svc.GenerateSessionToken(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateSessionToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, sessionSubject, claims.Subject)
}

func TestTokenServiceRejectsForgedTokens(t *testing.T) {
	svc := NewTokenService("test-secret", 24*time.Hour)
	other := NewTokenService("other-secret", 24*time.Hour)

	token, _, err := other.GenerateSessionToken(context.Background())
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(context.Background(), token)
	require.ErrorIs(t, err, domainerror.ErrInvalidToken)

	_, err = svc.ValidateSessionToken(context.Background(), "garbage")
	require.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestTokenServiceRejectsExpiredTokens(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Hour)

	token, _, err := svc.GenerateSessionToken(context.Background())
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(context.Background(), token)
	require.ErrorIs(t, err, domainerror.ErrInvalidToken)
}
