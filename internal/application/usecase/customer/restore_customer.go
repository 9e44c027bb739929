package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/application/stream"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

// RestoreCustomerInput represents the input for restoring a deleted customer.
type RestoreCustomerInput struct {
	CustomerID uuid.UUID
}

// RestoreCustomerOutput represents the output of a customer restore.
type RestoreCustomerOutput struct {
	Success bool
}

// RestoreCustomerUseCase reactivates a soft-deleted customer and the
// transactions that were deleted with it, atomically.
type RestoreCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
	hub          *stream.Hub
}

// NewRestoreCustomerUseCase creates a new RestoreCustomerUseCase instance.
func NewRestoreCustomerUseCase(customerRepo adapter.CustomerRepository, hub *stream.Hub) *RestoreCustomerUseCase {
	return &RestoreCustomerUseCase{
		customerRepo: customerRepo,
		hub:          hub,
	}
}

// Execute performs the restore.
func (uc *RestoreCustomerUseCase) Execute(ctx context.Context, input RestoreCustomerInput) (*RestoreCustomerOutput, error) {
	customer, err := uc.customerRepo.FindByIDAnyState(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCustomerNotFound) {
			return nil, domainerror.NewCustomerError(
				domainerror.ErrCodeCustomerNotFound,
				"",
				"customer not found",
				domainerror.ErrCustomerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	if customer.Lifecycle != entity.LifecycleDeleted {
		return nil, domainerror.NewCustomerError(
			domainerror.ErrCodeCustomerNotDeleted,
			"",
			"only deleted customers can be restored",
			domainerror.ErrCustomerNotDeleted,
		)
	}

	if err := uc.customerRepo.Restore(ctx, input.CustomerID); err != nil {
		return nil, fmt.Errorf("failed to restore customer: %w", err)
	}

	uc.hub.Notify()

	return &RestoreCustomerOutput{Success: true}, nil
}
