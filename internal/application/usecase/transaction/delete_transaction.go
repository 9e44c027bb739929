package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/application/stream"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for deleting a ledger entry.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of a ledger-entry deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase removes a single ledger entry permanently.
// Unlike customers, individual entries have no recycle bin; the customer
// balance simply refolds without the deleted entry.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	hub             *stream.Hub
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	hub *stream.Hub,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		hub:             hub,
	}
}

// Execute performs the deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	if _, err := uc.transactionRepo.FindByID(ctx, input.TransactionID); err != nil {
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

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	uc.hub.Notify()

	return &DeleteTransactionOutput{Success: true}, nil
}
