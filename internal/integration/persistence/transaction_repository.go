package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/integration/persistence/model"
)

// Listing order for transactions: newest date first, ties broken by
// creation time descending. Dates are "YYYY-MM-DD" so string ordering
// is chronological.
const transactionOrder = "date DESC, created_at DESC"

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an active transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND lifecycle = ?", id, string(entity.LifecycleActive)).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByCustomer retrieves all active transactions for a customer.
func (r *transactionRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("customer_id = ? AND lifecycle = ?", customerID, string(entity.LifecycleActive)).
		Order(transactionOrder).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindByFilter retrieves active transactions matching the filter.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("lifecycle = ?", string(entity.LifecycleActive))
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.MainType != nil {
		query = query.Where("main_type = ?", string(*filter.MainType))
	}
	if filter.SinceDate != "" {
		query = query.Where("date >= ?", filter.SinceDate)
	}

	var transactionModels []model.TransactionModel
	result := query.Order(transactionOrder).Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindRecent retrieves the n most recently created active transactions.
func (r *transactionRepository) FindRecent(ctx context.Context, n int) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("lifecycle = ?", string(entity.LifecycleActive)).
		Order("created_at DESC").
		Limit(n).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// NetDueByCustomer folds signed due amounts per customer over active
// transactions of active customers.
func (r *transactionRepository) NetDueByCustomer(ctx context.Context) ([]*adapter.CustomerNetDue, error) {
	var rows []struct {
		CustomerID uuid.UUID
		Due        decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("transactions.customer_id, SUM(transactions.due_amount) AS due").
		Joins("JOIN customers ON customers.id = transactions.customer_id").
		Where("transactions.lifecycle = ? AND customers.lifecycle = ?",
			string(entity.LifecycleActive), string(entity.LifecycleActive)).
		Group("transactions.customer_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	nets := make([]*adapter.CustomerNetDue, len(rows))
	for i, row := range rows {
		nets[i] = &adapter.CustomerNetDue{
			CustomerID: row.CustomerID,
			Due:        row.Due,
		}
	}
	return nets, nil
}

// NetDueForCustomer folds signed due amounts for one customer.
func (r *transactionRepository) NetDueForCustomer(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Due decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(due_amount), 0) AS due").
		Where("customer_id = ? AND lifecycle = ?", customerID, string(entity.LifecycleActive)).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return row.Due, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete permanently removes a single transaction.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// CountByCustomer counts active transactions for a customer.
func (r *transactionRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return r.countByLifecycle(ctx, customerID, entity.LifecycleActive)
}

// CountDeletedByCustomer counts transactions soft-deleted alongside the customer.
func (r *transactionRepository) CountDeletedByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return r.countByLifecycle(ctx, customerID, entity.LifecycleDeleted)
}

func (r *transactionRepository) countByLifecycle(ctx context.Context, customerID uuid.UUID, lifecycle entity.Lifecycle) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("customer_id = ? AND lifecycle = ?", customerID, string(lifecycle)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func toTransactionEntities(transactionModels []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions
}
