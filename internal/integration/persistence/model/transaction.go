package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Date is a local-calendar "YYYY-MM-DD" string; ordering on it is
// lexicographic, which for this format equals chronological.
type TransactionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`

	MainType string `gorm:"type:varchar(10);not null;index"`
	Type     string `gorm:"type:varchar(20);not null"`
	Date     string `gorm:"type:varchar(10);not null;index"`
	Details  string `gorm:"type:varchar(200)"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(12,1);not null"`
	AmountPaid  decimal.Decimal `gorm:"type:decimal(12,1);not null"`
	DueAmount   decimal.Decimal `gorm:"type:decimal(12,1);not null"`

	CropType    string          `gorm:"type:varchar(30)"`
	Weight      decimal.Decimal `gorm:"type:decimal(10,1)"`
	WeightInput string          `gorm:"type:varchar(100)"`

	Rate        decimal.Decimal `gorm:"type:decimal(12,1)"`
	Hours       float64
	Minutes     float64
	NumTrolleys float64

	BillPhoto string `gorm:"type:text"`

	Lifecycle string     `gorm:"type:varchar(10);not null;default:active;index"`
	DeletedAt *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"not null;index"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		MainType:    entity.MainType(m.MainType),
		Type:        m.Type,
		Date:        m.Date,
		Details:     m.Details,
		TotalAmount: m.TotalAmount,
		AmountPaid:  m.AmountPaid,
		DueAmount:   m.DueAmount,
		CropType:    m.CropType,
		Weight:      m.Weight,
		WeightInput: m.WeightInput,
		Rate:        m.Rate,
		Hours:       m.Hours,
		Minutes:     m.Minutes,
		NumTrolleys: m.NumTrolleys,
		BillPhoto:   m.BillPhoto,
		Lifecycle:   entity.Lifecycle(m.Lifecycle),
		DeletedAt:   m.DeletedAt,
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		CustomerID:  transaction.CustomerID,
		MainType:    string(transaction.MainType),
		Type:        transaction.Type,
		Date:        transaction.Date,
		Details:     transaction.Details,
		TotalAmount: transaction.TotalAmount,
		AmountPaid:  transaction.AmountPaid,
		DueAmount:   transaction.DueAmount,
		CropType:    transaction.CropType,
		Weight:      transaction.Weight,
		WeightInput: transaction.WeightInput,
		Rate:        transaction.Rate,
		Hours:       transaction.Hours,
		Minutes:     transaction.Minutes,
		NumTrolleys: transaction.NumTrolleys,
		BillPhoto:   transaction.BillPhoto,
		Lifecycle:   string(transaction.Lifecycle),
		DeletedAt:   transaction.DeletedAt,
		CreatedAt:   transaction.CreatedAt,
	}
}
