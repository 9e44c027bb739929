package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MainType discriminates the three transaction families.
type MainType string

const (
	MainTypeCrops   MainType = "crops"
	MainTypeTractor MainType = "tractor"
	MainTypeCash    MainType = "cash"
)

// Crop trade sub-kinds. Buy means the business buys crop from the customer.
const (
	TradeCropBuy  = "crop_buy"
	TradeCropSell = "crop_sell"
)

// Cash sub-kinds. Taken means the business receives cash from the customer.
const (
	CashTaken = "cash_taken"
	CashGiven = "cash_given"
)

// Tractor service sub-kinds. Rotavator and Threser are billed by time,
// the rest per trolley/unit.
const (
	ServiceRotavator    = "Rotavator"
	ServiceThreser      = "Threser"
	ServiceDhungaTrolly = "Dhunga Trolley"
	ServiceGittiTrolly  = "Gitti trolley"
	ServiceDaura        = "Daura"
)

// Transaction is a single ledger entry for a customer.
//
// DueAmount is the authoritative balance contribution: positive means the
// customer owes the business, negative means the business owes the customer.
// It is computed exactly once at write time by the valuation package and is
// never edited independently.
type Transaction struct {
	ID         uuid.UUID
	CustomerID uuid.UUID

	MainType MainType
	Type     string // sub-kind, enumerated per MainType

	// Date is a local-calendar date string ("YYYY-MM-DD") used for display
	// and ordering; CreatedAt is the server timestamp used as tie-break.
	Date string

	Details     string
	TotalAmount decimal.Decimal
	AmountPaid  decimal.Decimal
	DueAmount   decimal.Decimal

	// Crop fields
	CropType    string
	Weight      decimal.Decimal // kg, derived from WeightInput
	WeightInput string

	// Tractor fields
	Rate        decimal.Decimal
	Hours       float64
	Minutes     float64
	NumTrolleys float64

	// Optional inline bill photo, data-URL encoded.
	BillPhoto string

	Lifecycle Lifecycle
	DeletedAt *time.Time
	CreatedAt time.Time
}

// MarkDeleted moves the transaction to the deleted state.
func (t *Transaction) MarkDeleted(now time.Time) {
	t.Lifecycle = LifecycleDeleted
	t.DeletedAt = &now
}

// Restore moves the transaction back to the active state.
func (t *Transaction) Restore() {
	t.Lifecycle = LifecycleActive
	t.DeletedAt = nil
}
