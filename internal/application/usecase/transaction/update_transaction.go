package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/application/stream"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/domain/valuation"
)

// UpdateTransactionInput represents the input for editing a ledger entry.
// The whole entry is re-valued from the raw fields; stored amounts are
// never patched in place.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	RecordTransactionInput
}

// UpdateTransactionOutput represents the output of a ledger-entry update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles ledger-entry edits.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	hub             *stream.Hub
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	hub *stream.Hub,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		hub:             hub,
	}
}

// Execute performs the ledger-entry update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateCommon(input.Date, input.BillPhoto); err != nil {
		return nil, err
	}

	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"",
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	result, err := valuation.Valuate(valuationInput(input.RecordTransactionInput))
	if err != nil {
		return nil, err
	}

	// Identity, ownership and creation time survive the edit.
	input.CustomerID = existing.CustomerID
	updated := buildTransaction(existing.ID, input.RecordTransactionInput, result, existing.CreatedAt)

	if err := uc.transactionRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	uc.hub.Notify()

	return &UpdateTransactionOutput{Transaction: updated}, nil
}
