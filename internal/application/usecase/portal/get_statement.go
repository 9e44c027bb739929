// Package portal contains the public read-only customer statement use case.
package portal

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

// GetStatementInput represents the input for the portal statement lookup.
type GetStatementInput struct {
	AccessKey string
}

// GetStatementOutput represents the read-only statement shown to a customer.
// It deliberately carries no access key, phone or address of anyone else;
// the key holder sees exactly their own ledger.
type GetStatementOutput struct {
	CustomerName string
	Due          decimal.Decimal
	Transactions []*entity.Transaction
}

// GetStatementUseCase resolves an access key to a customer statement.
// Deleted customers are indistinguishable from unknown keys.
type GetStatementUseCase struct {
	customerRepo    adapter.CustomerRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetStatementUseCase creates a new GetStatementUseCase instance.
func NewGetStatementUseCase(
	customerRepo adapter.CustomerRepository,
	transactionRepo adapter.TransactionRepository,
) *GetStatementUseCase {
	return &GetStatementUseCase{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the statement lookup.
func (uc *GetStatementUseCase) Execute(ctx context.Context, input GetStatementInput) (*GetStatementOutput, error) {
	customer, err := uc.customerRepo.FindByAccessKey(ctx, input.AccessKey)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccessKeyNotFound) || errors.Is(err, domainerror.ErrCustomerNotFound) {
			return nil, domainerror.NewCustomerError(
				domainerror.ErrCodeAccessKeyNotFound,
				"",
				"invalid or expired access key",
				domainerror.ErrAccessKeyNotFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve access key: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	due := decimal.Zero
	for _, t := range transactions {
		due = due.Add(t.DueAmount)
	}

	return &GetStatementOutput{
		CustomerName: customer.Name,
		Due:          due,
		Transactions: transactions,
	}, nil
}
