package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

// GetCustomerInput represents the input for the customer detail view.
type GetCustomerInput struct {
	CustomerID uuid.UUID
}

// GetCustomerOutput represents the output of the customer detail view.
type GetCustomerOutput struct {
	Customer     *entity.Customer
	Due          decimal.Decimal
	Transactions []*entity.Transaction
}

// GetCustomerUseCase loads one customer with its full transaction history
// and recomputed net due.
type GetCustomerUseCase struct {
	customerRepo    adapter.CustomerRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetCustomerUseCase creates a new GetCustomerUseCase instance.
func NewGetCustomerUseCase(
	customerRepo adapter.CustomerRepository,
	transactionRepo adapter.TransactionRepository,
) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the customer detail lookup.
func (uc *GetCustomerUseCase) Execute(ctx context.Context, input GetCustomerInput) (*GetCustomerOutput, error) {
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

	transactions, err := uc.transactionRepo.FindByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	// Fold the signed dues rather than trusting any stored aggregate.
	due := decimal.Zero
	for _, t := range transactions {
		due = due.Add(t.DueAmount)
	}

	return &GetCustomerOutput{
		Customer:     customer,
		Due:          due,
		Transactions: transactions,
	}, nil
}
