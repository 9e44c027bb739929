package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseType enumerates the business expense categories.
type ExpenseType string

const (
	ExpenseTractorDiesel ExpenseType = "Tractor Diesel"
	ExpenseTractorRepair ExpenseType = "Tractor Repair"
	ExpenseStorageRent   ExpenseType = "Storage Rent"
	ExpenseLabor         ExpenseType = "Labor"
	ExpenseOther         ExpenseType = "Other"
)

// ExpenseTypes lists every valid expense type.
var ExpenseTypes = []ExpenseType{
	ExpenseTractorDiesel,
	ExpenseTractorRepair,
	ExpenseStorageRent,
	ExpenseLabor,
	ExpenseOther,
}

// ValidExpenseType reports whether t is a known expense type.
func ValidExpenseType(t ExpenseType) bool {
	for _, known := range ExpenseTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Expense is a business cost with no customer attached. It contributes to
// aggregate analytics only, never to a customer balance.
type Expense struct {
	ID      uuid.UUID
	Amount  decimal.Decimal
	Type    ExpenseType
	Details string
	Date    string // local-calendar date string, like Transaction.Date

	Lifecycle Lifecycle
	CreatedAt time.Time
}

// NewExpense creates a new active Expense dated today.
func NewExpense(amount decimal.Decimal, typ ExpenseType, details, date string) *Expense {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	return &Expense{
		ID:        uuid.New(),
		Amount:    amount,
		Type:      typ,
		Details:   details,
		Date:      date,
		Lifecycle: LifecycleActive,
		CreatedAt: time.Now().UTC(),
	}
}
