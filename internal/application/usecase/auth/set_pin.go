package auth

import (
	"context"
	"fmt"
	"unicode"

	"github.com/khata-ledger/backend/internal/application/adapter"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

// MinPinLength is the minimum number of digits in a PIN.
const MinPinLength = 4

// SetPinInput represents the input for setting or changing the PIN.
// CurrentPin is required only when a PIN already exists.
type SetPinInput struct {
	CurrentPin string
	NewPin     string
}

// SetPinOutput represents the output of a PIN change.
type SetPinOutput struct {
	Success bool
}

// SetPinUseCase sets the initial PIN or rotates an existing one.
type SetPinUseCase struct {
	settingRepo adapter.SettingRepository
	pinService  adapter.PinService
}

// NewSetPinUseCase creates a new SetPinUseCase instance.
func NewSetPinUseCase(settingRepo adapter.SettingRepository, pinService adapter.PinService) *SetPinUseCase {
	return &SetPinUseCase{
		settingRepo: settingRepo,
		pinService:  pinService,
	}
}

// Execute performs the PIN change.
func (uc *SetPinUseCase) Execute(ctx context.Context, input SetPinInput) (*SetPinOutput, error) {
	if !validPin(input.NewPin) {
		return nil, domainerror.ErrWeakPin
	}

	existing, err := uc.settingRepo.Get(ctx, adapter.SettingPinHash)
	if err != nil {
		return nil, fmt.Errorf("failed to load PIN hash: %w", err)
	}
	if existing != "" {
		ok, err := uc.pinService.VerifyPin(input.CurrentPin, existing)
		if err != nil {
			return nil, fmt.Errorf("failed to verify current PIN: %w", err)
		}
		if !ok {
			return nil, domainerror.ErrInvalidPin
		}
	}

	hash, err := uc.pinService.HashPin(input.NewPin)
	if err != nil {
		return nil, fmt.Errorf("failed to hash PIN: %w", err)
	}
	if err := uc.settingRepo.Set(ctx, adapter.SettingPinHash, hash); err != nil {
		return nil, fmt.Errorf("failed to store PIN hash: %w", err)
	}

	return &SetPinOutput{Success: true}, nil
}

// validPin requires at least MinPinLength characters, digits only.
func validPin(pin string) bool {
	if len(pin) < MinPinLength {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
