// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/domain/entity"
)

// CustomerWithDue pairs a customer with its recomputed net due.
type CustomerWithDue struct {
	Customer *entity.Customer
	Due      decimal.Decimal
}

// DeletedCustomer pairs a soft-deleted customer with the number of
// transactions that were deleted alongside it.
type DeletedCustomer struct {
	Customer         *entity.Customer
	TransactionCount int64
}

// CustomerRepository defines the interface for customer persistence operations.
type CustomerRepository interface {
	// Create creates a new customer in the database.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves an active customer by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByIDAnyState retrieves a customer by ID regardless of lifecycle state.
	FindByIDAnyState(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByAccessKey retrieves an active customer by its portal access key.
	FindByAccessKey(ctx context.Context, accessKey string) (*entity.Customer, error)

	// ExistsByName reports whether an active customer already carries the
	// name, compared case-insensitively.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ListActive retrieves all active customers with their recomputed dues,
	// ordered by name.
	ListActive(ctx context.Context) ([]*CustomerWithDue, error)

	// ListDeleted retrieves all soft-deleted customers, most recently
	// deleted first.
	ListDeleted(ctx context.Context) ([]*DeletedCustomer, error)

	// Update updates an existing customer in the database.
	Update(ctx context.Context, customer *entity.Customer) error

	// SoftDelete marks the customer and all its live transactions deleted in
	// a single atomic operation.
	SoftDelete(ctx context.Context, id uuid.UUID, deletedAt time.Time) error

	// Restore reactivates a soft-deleted customer and every transaction that
	// was deleted with it, atomically.
	Restore(ctx context.Context, id uuid.UUID) error

	// Purge permanently removes a customer and its transactions. Only
	// soft-deleted rows may be purged.
	Purge(ctx context.Context, id uuid.UUID) error

	// FindExpired returns soft-deleted customers whose deletion timestamp is
	// at or before the cutoff.
	FindExpired(ctx context.Context, cutoff time.Time) ([]*entity.Customer, error)
}
