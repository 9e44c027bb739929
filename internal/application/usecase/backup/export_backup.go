package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/domain/entity"
)

// ExportBackupOutput represents the output of a backup export.
type ExportBackupOutput struct {
	Document *Document
}

// ExportBackupUseCase serializes the whole store, soft-deleted records
// included, into the backup document format.
type ExportBackupUseCase struct {
	backupRepo adapter.BackupRepository
	clock      adapter.Clock
}

// NewExportBackupUseCase creates a new ExportBackupUseCase instance.
func NewExportBackupUseCase(backupRepo adapter.BackupRepository, clock adapter.Clock) *ExportBackupUseCase {
	return &ExportBackupUseCase{
		backupRepo: backupRepo,
		clock:      clock,
	}
}

// Execute performs the export.
func (uc *ExportBackupUseCase) Execute(ctx context.Context) (*ExportBackupOutput, error) {
	dump, err := uc.backupRepo.Dump(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to dump store: %w", err)
	}

	doc := &Document{
		Customers:    make([]CustomerRecord, 0, len(dump.Customers)),
		Transactions: make([]TransactionRecord, 0, len(dump.Transactions)),
		Expenses:     make([]ExpenseRecord, 0, len(dump.Expenses)),
		BackupDate:   uc.clock.Now().UTC().Format(time.RFC3339),
	}

	for _, c := range dump.Customers {
		doc.Customers = append(doc.Customers, customerRecord(c))
	}
	for _, t := range dump.Transactions {
		doc.Transactions = append(doc.Transactions, transactionRecord(t))
	}
	for _, e := range dump.Expenses {
		doc.Expenses = append(doc.Expenses, expenseRecord(e))
	}

	return &ExportBackupOutput{Document: doc}, nil
}

func customerRecord(c *entity.Customer) CustomerRecord {
	rec := CustomerRecord{
		ID:        c.ID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		AccessKey: c.AccessKey,
		IsDeleted: c.Lifecycle == entity.LifecycleDeleted,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
	if c.DeletedAt != nil {
		rec.DeletedAt = c.DeletedAt.UTC().Format(time.RFC3339)
	}
	return rec
}

func transactionRecord(t *entity.Transaction) TransactionRecord {
	rec := TransactionRecord{
		ID:          t.ID.String(),
		CustomerID:  t.CustomerID.String(),
		MainType:    string(t.MainType),
		Type:        t.Type,
		Date:        t.Date,
		Details:     t.Details,
		TotalAmount: t.TotalAmount,
		AmountPaid:  t.AmountPaid,
		DueAmount:   t.DueAmount,
		CropType:    t.CropType,
		Weight:      t.Weight,
		WeightInput: t.WeightInput,
		Rate:        t.Rate,
		Hours:       t.Hours,
		Minutes:     t.Minutes,
		NumTrolleys: t.NumTrolleys,
		BillPhoto:   t.BillPhoto,
		IsDeleted:   t.Lifecycle == entity.LifecycleDeleted,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.DeletedAt != nil {
		rec.DeletedAt = t.DeletedAt.UTC().Format(time.RFC3339)
	}
	return rec
}

func expenseRecord(e *entity.Expense) ExpenseRecord {
	return ExpenseRecord{
		ID:        e.ID.String(),
		Amount:    e.Amount,
		Type:      string(e.Type),
		Details:   e.Details,
		Date:      e.Date,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
