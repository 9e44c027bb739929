package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/integration/persistence/model"
)

// How many rows to insert per batch when applying an import.
const importBatchSize = 200

// backupRepository implements the adapter.BackupRepository interface.
type backupRepository struct {
	db *gorm.DB
}

// NewBackupRepository creates a new backup repository instance.
func NewBackupRepository(db *gorm.DB) adapter.BackupRepository {
	return &backupRepository{
		db: db,
	}
}

// Dump retrieves every customer, transaction and expense regardless of
// lifecycle state, in stable creation order.
func (r *backupRepository) Dump(ctx context.Context) (*adapter.BackupDump, error) {
	var customerModels []model.CustomerModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&customerModels).Error; err != nil {
		return nil, err
	}

	var transactionModels []model.TransactionModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	var expenseModels []model.ExpenseModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&expenseModels).Error; err != nil {
		return nil, err
	}

	dump := &adapter.BackupDump{
		Transactions: toTransactionEntities(transactionModels),
	}
	for _, cm := range customerModels {
		dump.Customers = append(dump.Customers, cm.ToEntity())
	}
	for _, em := range expenseModels {
		dump.Expenses = append(dump.Expenses, em.ToEntity())
	}
	return dump, nil
}

// importRepository implements the adapter.ImportRepository interface.
type importRepository struct {
	db *gorm.DB
}

// NewImportRepository creates a new import repository instance.
func NewImportRepository(db *gorm.DB) adapter.ImportRepository {
	return &importRepository{
		db: db,
	}
}

// Apply persists a sanitized import batch inside a single database
// transaction. Either the whole batch lands or none of it does.
func (r *importRepository) Apply(ctx context.Context, batch *adapter.ImportBatch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(batch.NewCustomers) > 0 {
			customerModels := make([]*model.CustomerModel, len(batch.NewCustomers))
			for i, customer := range batch.NewCustomers {
				customerModels[i] = model.CustomerFromEntity(customer)
			}
			if err := tx.CreateInBatches(customerModels, importBatchSize).Error; err != nil {
				return err
			}
		}

		for _, customer := range batch.MergedCustomers {
			if err := tx.Save(model.CustomerFromEntity(customer)).Error; err != nil {
				return err
			}
		}

		if len(batch.Transactions) > 0 {
			transactionModels := make([]*model.TransactionModel, len(batch.Transactions))
			for i, transaction := range batch.Transactions {
				transactionModels[i] = model.TransactionFromEntity(transaction)
			}
			if err := tx.CreateInBatches(transactionModels, importBatchSize).Error; err != nil {
				return err
			}
		}

		if len(batch.Expenses) > 0 {
			expenseModels := make([]*model.ExpenseModel, len(batch.Expenses))
			for i, expense := range batch.Expenses {
				expenseModels[i] = model.ExpenseFromEntity(expense)
			}
			if err := tx.CreateInBatches(expenseModels, importBatchSize).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
