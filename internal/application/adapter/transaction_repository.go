package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/domain/entity"
)

// TransactionFilter narrows transaction listings. A nil field means
// "don't filter on it". Dates are local-calendar "YYYY-MM-DD" strings and
// compare lexicographically.
type TransactionFilter struct {
	CustomerID *uuid.UUID
	MainType   *entity.MainType
	SinceDate  string
}

// CustomerNetDue is a per-customer fold of signed due amounts.
type CustomerNetDue struct {
	CustomerID uuid.UUID
	Due        decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves an active transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByCustomer retrieves all active transactions for a customer,
	// newest date first, ties broken by creation time descending.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Transaction, error)

	// FindByFilter retrieves active transactions matching the filter, in the
	// same order as FindByCustomer.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// FindRecent retrieves the n most recently created active transactions.
	FindRecent(ctx context.Context, n int) ([]*entity.Transaction, error)

	// NetDueByCustomer folds signed due amounts per customer over all active
	// transactions of active customers.
	NetDueByCustomer(ctx context.Context) ([]*CustomerNetDue, error)

	// NetDueForCustomer folds signed due amounts for one customer.
	NetDueForCustomer(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete permanently removes a single transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCustomer counts active transactions for a customer.
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)

	// CountDeletedByCustomer counts transactions soft-deleted alongside the
	// customer, for the recently-deleted listing.
	CountDeletedByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}

// ExpenseRepository defines the interface for business expense persistence.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// List retrieves all expenses, newest date first.
	List(ctx context.Context) ([]*entity.Expense, error)

	// ListSince retrieves expenses whose date is at or after the cutoff
	// date string.
	ListSince(ctx context.Context, sinceDate string) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete permanently removes an expense.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ImportBatch is the sanitized, remapped payload handed to the import
// repository. Everything in it is persisted in one transaction or not at all.
type ImportBatch struct {
	NewCustomers    []*entity.Customer
	MergedCustomers []*entity.Customer
	Transactions    []*entity.Transaction
	Expenses        []*entity.Expense
}

// ImportRepository applies a merge-import batch atomically.
type ImportRepository interface {
	// Apply inserts new customers, updates merged ones and bulk-inserts
	// transactions and expenses inside a single database transaction.
	Apply(ctx context.Context, batch *ImportBatch) error
}
