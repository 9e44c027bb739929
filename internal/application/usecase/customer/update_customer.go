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

// UpdateCustomerInput represents the input for editing a customer profile.
type UpdateCustomerInput struct {
	CustomerID uuid.UUID
	Name       string
	Phone      string
	Address    string
}

// UpdateCustomerOutput represents the output of a customer update.
type UpdateCustomerOutput struct {
	ID      uuid.UUID
	Name    string
	Phone   string
	Address string
}

// UpdateCustomerUseCase handles customer profile edits. The access key is
// never touched here.
type UpdateCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
	hub          *stream.Hub
}

// NewUpdateCustomerUseCase creates a new UpdateCustomerUseCase instance.
func NewUpdateCustomerUseCase(customerRepo adapter.CustomerRepository, hub *stream.Hub) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
		hub:          hub,
	}
}

// Execute performs the customer update.
func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, input UpdateCustomerInput) (*UpdateCustomerOutput, error) {
	name, phone, address, err := validateProfile(input.Name, input.Phone, input.Address)
	if err != nil {
		return nil, err
	}

	customer, err := uc.customerRepo.FindByID(ctx, input.CustomerID)
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

	customer.Name = name
	customer.Phone = phone
	customer.Address = address

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	uc.hub.Notify()

	return &UpdateCustomerOutput{
		ID:      customer.ID,
		Name:    customer.Name,
		Phone:   customer.Phone,
		Address: customer.Address,
	}, nil
}
