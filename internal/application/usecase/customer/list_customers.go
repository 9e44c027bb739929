package customer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/adapter"
)

// CustomerSummary is one row of the customer list.
type CustomerSummary struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Address   string
	AccessKey string
	Due       decimal.Decimal
	CreatedAt time.Time
}

// ListCustomersOutput represents the output of the customer listing.
type ListCustomersOutput struct {
	Customers []*CustomerSummary
}

// ListCustomersUseCase lists active customers with their net dues. Dues are
// recomputed from the live transaction set on every call, never cached.
type ListCustomersUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewListCustomersUseCase creates a new ListCustomersUseCase instance.
func NewListCustomersUseCase(customerRepo adapter.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo}
}

// Execute performs the customer listing.
func (uc *ListCustomersUseCase) Execute(ctx context.Context) (*ListCustomersOutput, error) {
	rows, err := uc.customerRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*CustomerSummary, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, &CustomerSummary{
			ID:        row.Customer.ID,
			Name:      row.Customer.Name,
			Phone:     row.Customer.Phone,
			Address:   row.Customer.Address,
			AccessKey: row.Customer.AccessKey,
			Due:       row.Due,
			CreatedAt: row.Customer.CreatedAt,
		})
	}

	return &ListCustomersOutput{Customers: customers}, nil
}
