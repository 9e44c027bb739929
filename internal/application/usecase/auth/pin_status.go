package auth

import (
	"context"
	"fmt"

	"github.com/khata-ledger/backend/internal/application/adapter"
)

// PinStatusOutput reports whether a PIN has been configured.
type PinStatusOutput struct {
	PinSet bool
}

// PinStatusUseCase lets the client decide between first-run PIN setup and
// the unlock screen.
type PinStatusUseCase struct {
	settingRepo adapter.SettingRepository
}

// NewPinStatusUseCase creates a new PinStatusUseCase instance.
func NewPinStatusUseCase(settingRepo adapter.SettingRepository) *PinStatusUseCase {
	return &PinStatusUseCase{
		settingRepo: settingRepo,
	}
}

// Execute performs the status lookup.
func (uc *PinStatusUseCase) Execute(ctx context.Context) (*PinStatusOutput, error) {
	hash, err := uc.settingRepo.Get(ctx, adapter.SettingPinHash)
	if err != nil {
		return nil, fmt.Errorf("failed to load PIN hash: %w", err)
	}
	return &PinStatusOutput{PinSet: hash != ""}, nil
}
