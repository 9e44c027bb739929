package customer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khata-ledger/backend/internal/application/adapter"
)

// DeletedCustomerSummary is one row of the recently-deleted listing.
type DeletedCustomerSummary struct {
	ID               uuid.UUID
	Name             string
	Phone            string
	DeletedAt        time.Time
	TransactionCount int64
	PurgeAt          time.Time
}

// ListDeletedCustomersOutput represents the output of the deleted listing.
type ListDeletedCustomersOutput struct {
	Customers []*DeletedCustomerSummary
}

// ListDeletedCustomersUseCase lists customers in the recently-deleted state,
// with the date each one becomes eligible for permanent removal.
type ListDeletedCustomersUseCase struct {
	customerRepo adapter.CustomerRepository
	retention    time.Duration
}

// NewListDeletedCustomersUseCase creates a new ListDeletedCustomersUseCase instance.
func NewListDeletedCustomersUseCase(
	customerRepo adapter.CustomerRepository,
	retention time.Duration,
) *ListDeletedCustomersUseCase {
	return &ListDeletedCustomersUseCase{
		customerRepo: customerRepo,
		retention:    retention,
	}
}

// Execute performs the deleted-customer listing.
func (uc *ListDeletedCustomersUseCase) Execute(ctx context.Context) (*ListDeletedCustomersOutput, error) {
	rows, err := uc.customerRepo.ListDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deleted customers: %w", err)
	}

	customers := make([]*DeletedCustomerSummary, 0, len(rows))
	for _, row := range rows {
		summary := &DeletedCustomerSummary{
			ID:               row.Customer.ID,
			Name:             row.Customer.Name,
			Phone:            row.Customer.Phone,
			TransactionCount: row.TransactionCount,
		}
		if row.Customer.DeletedAt != nil {
			summary.DeletedAt = *row.Customer.DeletedAt
			summary.PurgeAt = row.Customer.DeletedAt.Add(uc.retention)
		}
		customers = append(customers, summary)
	}

	return &ListDeletedCustomersOutput{Customers: customers}, nil
}
