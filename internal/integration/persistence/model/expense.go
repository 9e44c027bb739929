package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,1);not null"`
	Type      string          `gorm:"type:varchar(20);not null;index"`
	Details   string          `gorm:"type:varchar(200)"`
	Date      string          `gorm:"type:varchar(10);not null;index"`
	Lifecycle string          `gorm:"type:varchar(10);not null;default:active"`
	CreatedAt time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:        m.ID,
		Amount:    m.Amount,
		Type:      entity.ExpenseType(m.Type),
		Details:   m.Details,
		Date:      m.Date,
		Lifecycle: entity.Lifecycle(m.Lifecycle),
		CreatedAt: m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:        expense.ID,
		Amount:    expense.Amount,
		Type:      string(expense.Type),
		Details:   expense.Details,
		Date:      expense.Date,
		Lifecycle: string(expense.Lifecycle),
		CreatedAt: expense.CreatedAt,
	}
}
