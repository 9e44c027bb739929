package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/application/stream"
	"github.com/khata-ledger/backend/internal/domain/entity"
)

// CreateCustomerInput represents the input for customer creation.
type CreateCustomerInput struct {
	Name    string
	Phone   string
	Address string
}

// CreateCustomerOutput represents the output of customer creation.
// DuplicateName flags that another active customer already carries the
// name; creation proceeds anyway and the caller decides what to surface.
type CreateCustomerOutput struct {
	ID            uuid.UUID
	Name          string
	Phone         string
	Address       string
	AccessKey     string
	DuplicateName bool
}

// CreateCustomerUseCase handles customer creation logic.
type CreateCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
	hub          *stream.Hub
}

// NewCreateCustomerUseCase creates a new CreateCustomerUseCase instance.
func NewCreateCustomerUseCase(customerRepo adapter.CustomerRepository, hub *stream.Hub) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
		hub:          hub,
	}
}

// Execute performs the customer creation.
func (uc *CreateCustomerUseCase) Execute(ctx context.Context, input CreateCustomerInput) (*CreateCustomerOutput, error) {
	name, phone, address, err := validateProfile(input.Name, input.Phone, input.Address)
	if err != nil {
		return nil, err
	}

	duplicate, err := uc.customerRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate name: %w", err)
	}

	customer := entity.NewCustomer(name, phone, address)
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	uc.hub.Notify()

	return &CreateCustomerOutput{
		ID:            customer.ID,
		Name:          customer.Name,
		Phone:         customer.Phone,
		Address:       customer.Address,
		AccessKey:     customer.AccessKey,
		DuplicateName: duplicate,
	}, nil
}
