package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/application/stream"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

// DeleteCustomerInput represents the input for soft-deleting a customer.
type DeleteCustomerInput struct {
	CustomerID uuid.UUID
}

// DeleteCustomerOutput represents the output of a customer soft-delete.
type DeleteCustomerOutput struct {
	Success bool
}

// DeleteCustomerUseCase soft-deletes a customer together with all its live
// transactions. The cascade is atomic: either the customer and every
// transaction move to the deleted state, or nothing does.
type DeleteCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
	clock        adapter.Clock
	hub          *stream.Hub
}

// NewDeleteCustomerUseCase creates a new DeleteCustomerUseCase instance.
func NewDeleteCustomerUseCase(
	customerRepo adapter.CustomerRepository,
	clock adapter.Clock,
	hub *stream.Hub,
) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo: customerRepo,
		clock:        clock,
		hub:          hub,
	}
}

// Execute performs the soft-delete cascade.
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, input DeleteCustomerInput) (*DeleteCustomerOutput, error) {
	if _, err := uc.customerRepo.FindByID(ctx, input.CustomerID); err != nil {
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

	if err := uc.customerRepo.SoftDelete(ctx, input.CustomerID, uc.clock.Now()); err != nil {
		return nil, fmt.Errorf("failed to delete customer: %w", err)
	}

	uc.hub.Notify()

	return &DeleteCustomerOutput{Success: true}, nil
}
