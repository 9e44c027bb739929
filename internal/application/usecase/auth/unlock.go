// Package auth contains the PIN gate use cases.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/khata-ledger/backend/internal/application/adapter"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

// UnlockInput represents the input for a PIN unlock attempt.
type UnlockInput struct {
	Pin string
}

// UnlockOutput carries the session token issued on success.
type UnlockOutput struct {
	Token     string
	ExpiresAt time.Time
}

// UnlockUseCase verifies the PIN and issues a session token.
type UnlockUseCase struct {
	settingRepo  adapter.SettingRepository
	pinService   adapter.PinService
	tokenService adapter.TokenService
}

// NewUnlockUseCase creates a new UnlockUseCase instance.
func NewUnlockUseCase(
	settingRepo adapter.SettingRepository,
	pinService adapter.PinService,
	tokenService adapter.TokenService,
) *UnlockUseCase {
	return &UnlockUseCase{
		settingRepo:  settingRepo,
		pinService:   pinService,
		tokenService: tokenService,
	}
}

// Execute performs the unlock.
func (uc *UnlockUseCase) Execute(ctx context.Context, input UnlockInput) (*UnlockOutput, error) {
	hash, err := uc.settingRepo.Get(ctx, adapter.SettingPinHash)
	if err != nil {
		return nil, fmt.Errorf("failed to load PIN hash: %w", err)
	}
	if hash == "" {
		return nil, domainerror.ErrPinNotSet
	}

	ok, err := uc.pinService.VerifyPin(input.Pin, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify PIN: %w", err)
	}
	if !ok {
		return nil, domainerror.ErrInvalidPin
	}

	token, expiresAt, err := uc.tokenService.GenerateSessionToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &UnlockOutput{Token: token, ExpiresAt: expiresAt}, nil
}
