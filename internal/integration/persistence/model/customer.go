// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/khata-ledger/backend/internal/domain/entity"
)

// CustomerModel represents the customers table in the database. Lifecycle is
// an explicit state column rather than gorm's soft-delete timestamp, so the
// deleted set stays a first-class queryable state.
type CustomerModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(100);not null;index"`
	Phone     string     `gorm:"type:varchar(20);index"`
	Address   string     `gorm:"type:varchar(200)"`
	AccessKey string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	Lifecycle string     `gorm:"type:varchar(10);not null;default:active;index"`
	DeletedAt *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CustomerModel.
func (CustomerModel) TableName() string {
	return "customers"
}

// ToEntity converts a CustomerModel to a domain Customer entity.
func (m *CustomerModel) ToEntity() *entity.Customer {
	return &entity.Customer{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Address:   m.Address,
		AccessKey: m.AccessKey,
		Lifecycle: entity.Lifecycle(m.Lifecycle),
		DeletedAt: m.DeletedAt,
		CreatedAt: m.CreatedAt,
	}
}

// CustomerFromEntity creates a CustomerModel from a domain Customer entity.
func CustomerFromEntity(customer *entity.Customer) *CustomerModel {
	return &CustomerModel{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Address:   customer.Address,
		AccessKey: customer.AccessKey,
		Lifecycle: string(customer.Lifecycle),
		DeletedAt: customer.DeletedAt,
		CreatedAt: customer.CreatedAt,
	}
}
