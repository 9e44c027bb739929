package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/domain/entity"
)

// ExpenseRequest is the payload for creating or rewriting a business expense.
type ExpenseRequest struct {
	Amount  float64 `json:"amount" binding:"required"`
	Type    string  `json:"type" binding:"required"`
	Details string  `json:"details"`
	Date    string  `json:"date"`
}

// ExpenseResponse is a single business expense payload.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Details   string          `json:"details,omitempty"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ExpenseListResponse is the expense listing payload.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse maps a domain expense to its payload.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        expense.ID.String(),
		Amount:    expense.Amount,
		Type:      string(expense.Type),
		Details:   expense.Details,
		Date:      expense.Date,
		CreatedAt: expense.CreatedAt,
	}
}

// ToExpenseListResponse maps a slice of domain expenses.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, len(expenses)),
	}
	for i, expense := range expenses {
		response.Expenses[i] = ToExpenseResponse(expense)
	}
	return response
}
