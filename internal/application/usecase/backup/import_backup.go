package backup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/application/stream"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

// ImportBackupInput represents the input for a merge-import.
type ImportBackupInput struct {
	Payload []byte
}

// ImportBackupOutput reports what the merge did.
type ImportBackupOutput struct {
	CustomersCreated     int
	CustomersMerged      int
	TransactionsImported int
	ExpensesImported     int
	RecordsDropped       int
}

// ImportBackupUseCase reconciles a backup document into the live store.
//
// Customers are deduplicated against existing data by phone first, then by
// case-insensitive name; matches are shallow-merged with incoming non-empty
// fields winning. Transaction customer ids are remapped through the
// resulting id map and orphans dropped. Transactions and expenses are never
// deduplicated; they are always inserted as new records. The whole batch
// commits atomically or not at all.
type ImportBackupUseCase struct {
	backupRepo adapter.BackupRepository
	importRepo adapter.ImportRepository
	hub        *stream.Hub
	maxBytes   int
}

// NewImportBackupUseCase creates a new ImportBackupUseCase instance.
func NewImportBackupUseCase(
	backupRepo adapter.BackupRepository,
	importRepo adapter.ImportRepository,
	hub *stream.Hub,
	maxBytes int,
) *ImportBackupUseCase {
	return &ImportBackupUseCase{
		backupRepo: backupRepo,
		importRepo: importRepo,
		hub:        hub,
		maxBytes:   maxBytes,
	}
}

// Execute performs the merge-import.
func (uc *ImportBackupUseCase) Execute(ctx context.Context, input ImportBackupInput) (*ImportBackupOutput, error) {
	doc, dropped, err := sanitizeDocument(input.Payload, uc.maxBytes)
	if err != nil {
		return nil, err
	}

	existing, err := uc.backupRepo.Dump(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing data: %w", err)
	}

	byPhone := make(map[string]*entity.Customer)
	byName := make(map[string]*entity.Customer)
	usedKeys := make(map[string]bool)
	for _, c := range existing.Customers {
		if c.Phone != "" {
			byPhone[c.Phone] = c
		}
		byName[strings.ToLower(c.Name)] = c
		usedKeys[c.AccessKey] = true
	}

	batch := &adapter.ImportBatch{}
	idMap := make(map[string]uuid.UUID)
	merged := make(map[uuid.UUID]*entity.Customer)
	created := 0

	for _, rec := range doc.Customers {
		match := matchCustomer(rec, byPhone, byName)
		if match != nil {
			mergeCustomer(match, rec)
			idMap[rec.ID] = match.ID
			if _, seen := merged[match.ID]; !seen {
				merged[match.ID] = match
				batch.MergedCustomers = append(batch.MergedCustomers, match)
			}
			continue
		}

		customer := newCustomerFromRecord(rec)
		// A key already held by another customer would trip the unique
		// index and sink the whole batch; mint a fresh one instead.
		if usedKeys[customer.AccessKey] {
			customer.AccessKey = entity.NewAccessKey()
		}
		usedKeys[customer.AccessKey] = true
		idMap[rec.ID] = customer.ID
		batch.NewCustomers = append(batch.NewCustomers, customer)
		created++

		// Later records in the same document dedupe against this one too.
		if customer.Phone != "" {
			byPhone[customer.Phone] = customer
		}
		byName[strings.ToLower(customer.Name)] = customer
	}

	orphans := 0
	for _, rec := range doc.Transactions {
		customerID, ok := idMap[rec.CustomerID]
		if !ok {
			orphans++
			continue
		}
		batch.Transactions = append(batch.Transactions, newTransactionFromRecord(rec, customerID))
	}
	if orphans > 0 {
		slog.Warn("Dropped orphan transactions during import", "count", orphans)
	}

	for _, rec := range doc.Expenses {
		batch.Expenses = append(batch.Expenses, newExpenseFromRecord(rec))
	}

	if err := uc.importRepo.Apply(ctx, batch); err != nil {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeImportFailed,
			"import failed, no changes were applied",
			err,
		)
	}

	uc.hub.Notify()

	return &ImportBackupOutput{
		CustomersCreated:     created,
		CustomersMerged:      len(batch.MergedCustomers),
		TransactionsImported: len(batch.Transactions),
		ExpensesImported:     len(batch.Expenses),
		RecordsDropped:       dropped + orphans,
	}, nil
}

// matchCustomer finds an existing customer by phone first, then by
// case-insensitive name.
func matchCustomer(rec CustomerRecord, byPhone, byName map[string]*entity.Customer) *entity.Customer {
	if rec.Phone != "" {
		if c, ok := byPhone[rec.Phone]; ok {
			return c
		}
	}
	if c, ok := byName[strings.ToLower(rec.Name)]; ok {
		return c
	}
	return nil
}

// mergeCustomer applies the shallow merge: incoming non-empty fields win,
// existing values survive otherwise. Identity, access key and lifecycle of
// the existing record are kept.
func mergeCustomer(existing *entity.Customer, rec CustomerRecord) {
	if rec.Name != "" {
		existing.Name = rec.Name
	}
	if rec.Phone != "" {
		existing.Phone = rec.Phone
	}
	if rec.Address != "" {
		existing.Address = rec.Address
	}
}

func newCustomerFromRecord(rec CustomerRecord) *entity.Customer {
	customer := entity.NewCustomer(rec.Name, rec.Phone, rec.Address)
	// Keep the exported access key so portal links in circulation survive
	// a device migration.
	if rec.AccessKey != "" {
		customer.AccessKey = rec.AccessKey
	}
	if at := parseBackupTime(rec.CreatedAt); at != nil {
		customer.CreatedAt = *at
	}
	if rec.IsDeleted {
		deletedAt := time.Now().UTC()
		if at := parseBackupTime(rec.DeletedAt); at != nil {
			deletedAt = *at
		}
		customer.MarkDeleted(deletedAt)
	}
	return customer
}

func newTransactionFromRecord(rec TransactionRecord, customerID uuid.UUID) *entity.Transaction {
	txn := &entity.Transaction{
		ID:          uuid.New(),
		CustomerID:  customerID,
		MainType:    entity.MainType(rec.MainType),
		Type:        rec.Type,
		Date:        rec.Date,
		Details:     rec.Details,
		TotalAmount: rec.TotalAmount.Round(1),
		AmountPaid:  rec.AmountPaid.Round(1),
		DueAmount:   rec.DueAmount.Round(1),
		CropType:    rec.CropType,
		Weight:      rec.Weight,
		WeightInput: rec.WeightInput,
		Rate:        rec.Rate,
		Hours:       rec.Hours,
		Minutes:     rec.Minutes,
		NumTrolleys: rec.NumTrolleys,
		BillPhoto:   rec.BillPhoto,
		Lifecycle:   entity.LifecycleActive,
		CreatedAt:   time.Now().UTC(),
	}
	if at := parseBackupTime(rec.CreatedAt); at != nil {
		txn.CreatedAt = *at
	}
	if rec.IsDeleted {
		deletedAt := time.Now().UTC()
		if at := parseBackupTime(rec.DeletedAt); at != nil {
			deletedAt = *at
		}
		txn.MarkDeleted(deletedAt)
	}
	return txn
}

func newExpenseFromRecord(rec ExpenseRecord) *entity.Expense {
	expense := entity.NewExpense(rec.Amount.Round(1), entity.ExpenseType(rec.Type), rec.Details, rec.Date)
	if at := parseBackupTime(rec.CreatedAt); at != nil {
		expense.CreatedAt = *at
	}
	return expense
}

// parseBackupTime accepts RFC3339 with or without sub-second precision,
// which covers both our exports and the source app's ISO strings.
func parseBackupTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			u := t.UTC()
			return &u
		}
	}
	return nil
}
