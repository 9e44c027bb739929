package adapter

import (
	"context"

	"github.com/khata-ledger/backend/internal/domain/entity"
)

// BackupDump is a full snapshot of the store, soft-deleted records included.
type BackupDump struct {
	Customers    []*entity.Customer
	Transactions []*entity.Transaction
	Expenses     []*entity.Expense
}

// BackupRepository reads the whole store for export and for merge matching.
type BackupRepository interface {
	// Dump retrieves every customer, transaction and expense regardless of
	// lifecycle state.
	Dump(ctx context.Context) (*BackupDump, error)
}
