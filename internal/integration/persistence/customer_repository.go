// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/integration/persistence/model"
)

// customerRepository implements the adapter.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance.
func NewCustomerRepository(db *gorm.DB) adapter.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create creates a new customer in the database.
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.CustomerFromEntity(customer)
	result := r.db.WithContext(ctx).Create(customerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an active customer by its ID.
func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND lifecycle = ?", id, string(entity.LifecycleActive)).
		First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCustomerNotFound
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// FindByIDAnyState retrieves a customer by ID regardless of lifecycle state.
func (r *customerRepository) FindByIDAnyState(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCustomerNotFound
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// FindByAccessKey retrieves an active customer by its portal access key.
func (r *customerRepository) FindByAccessKey(ctx context.Context, accessKey string) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).
		Where("access_key = ? AND lifecycle = ?", accessKey, string(entity.LifecycleActive)).
		First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccessKeyNotFound
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// ExistsByName reports whether an active customer already carries the name.
func (r *customerRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("LOWER(name) = LOWER(?) AND lifecycle = ?", name, string(entity.LifecycleActive)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ListActive retrieves all active customers with their recomputed dues.
func (r *customerRepository) ListActive(ctx context.Context) ([]*adapter.CustomerWithDue, error) {
	var customerModels []model.CustomerModel
	result := r.db.WithContext(ctx).
		Where("lifecycle = ?", string(entity.LifecycleActive)).
		Order("name ASC").
		Find(&customerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	dues, err := r.netDues(ctx)
	if err != nil {
		return nil, err
	}

	customers := make([]*adapter.CustomerWithDue, len(customerModels))
	for i, cm := range customerModels {
		customers[i] = &adapter.CustomerWithDue{
			Customer: cm.ToEntity(),
			Due:      dues[cm.ID],
		}
	}
	return customers, nil
}

// netDues folds signed due amounts per customer over active transactions.
func (r *customerRepository) netDues(ctx context.Context) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []struct {
		CustomerID uuid.UUID
		Due        decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("customer_id, SUM(due_amount) AS due").
		Where("lifecycle = ?", string(entity.LifecycleActive)).
		Group("customer_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	dues := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		dues[row.CustomerID] = row.Due
	}
	return dues, nil
}

// ListDeleted retrieves soft-deleted customers, most recently deleted first.
func (r *customerRepository) ListDeleted(ctx context.Context) ([]*adapter.DeletedCustomer, error) {
	var customerModels []model.CustomerModel
	result := r.db.WithContext(ctx).
		Where("lifecycle = ?", string(entity.LifecycleDeleted)).
		Order("deleted_at DESC").
		Find(&customerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	customers := make([]*adapter.DeletedCustomer, len(customerModels))
	for i, cm := range customerModels {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&model.TransactionModel{}).
			Where("customer_id = ? AND lifecycle = ?", cm.ID, string(entity.LifecycleDeleted)).
			Count(&count).Error; err != nil {
			return nil, err
		}
		customers[i] = &adapter.DeletedCustomer{
			Customer:         cm.ToEntity(),
			TransactionCount: count,
		}
	}
	return customers, nil
}

// Update updates an existing customer in the database.
func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.CustomerFromEntity(customer)
	result := r.db.WithContext(ctx).Save(customerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SoftDelete marks the customer and all its live transactions deleted in one
// database transaction.
func (r *customerRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.CustomerModel{}).
			Where("id = ? AND lifecycle = ?", id, string(entity.LifecycleActive)).
			Updates(map[string]any{
				"lifecycle":  string(entity.LifecycleDeleted),
				"deleted_at": deletedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCustomerNotFound
		}

		return tx.Model(&model.TransactionModel{}).
			Where("customer_id = ? AND lifecycle = ?", id, string(entity.LifecycleActive)).
			Updates(map[string]any{
				"lifecycle":  string(entity.LifecycleDeleted),
				"deleted_at": deletedAt,
			}).Error
	})
}

// Restore reactivates a soft-deleted customer and its deleted transactions
// in one database transaction.
func (r *customerRepository) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.CustomerModel{}).
			Where("id = ? AND lifecycle = ?", id, string(entity.LifecycleDeleted)).
			Updates(map[string]any{
				"lifecycle":  string(entity.LifecycleActive),
				"deleted_at": nil,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCustomerNotDeleted
		}

		return tx.Model(&model.TransactionModel{}).
			Where("customer_id = ? AND lifecycle = ?", id, string(entity.LifecycleDeleted)).
			Updates(map[string]any{
				"lifecycle":  string(entity.LifecycleActive),
				"deleted_at": nil,
			}).Error
	})
}

// Purge permanently removes a soft-deleted customer and its transactions in
// one database transaction.
func (r *customerRepository) Purge(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND lifecycle = ?", id, string(entity.LifecycleDeleted)).
			Delete(&model.CustomerModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCustomerNotDeleted
		}

		return tx.Where("customer_id = ?", id).Delete(&model.TransactionModel{}).Error
	})
}

// FindExpired returns soft-deleted customers whose deletion timestamp is at
// or before the cutoff.
func (r *customerRepository) FindExpired(ctx context.Context, cutoff time.Time) ([]*entity.Customer, error) {
	var customerModels []model.CustomerModel
	result := r.db.WithContext(ctx).
		Where("lifecycle = ? AND deleted_at <= ?", string(entity.LifecycleDeleted), cutoff).
		Find(&customerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	customers := make([]*entity.Customer, len(customerModels))
	for i, cm := range customerModels {
		customers[i] = cm.ToEntity()
	}
	return customers, nil
}
