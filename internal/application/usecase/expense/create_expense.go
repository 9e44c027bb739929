// Package expense contains business-expense use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/application/stream"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/domain/valuation"
)

// CreateExpenseInput represents the input for recording a business expense.
type CreateExpenseInput struct {
	Amount  decimal.Decimal
	Type    entity.ExpenseType
	Details string
	Date    string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	hub         *stream.Hub
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, hub *stream.Hub) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		hub:         hub,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	amount, typ, details, err := validateExpense(input.Amount, input.Type, input.Details)
	if err != nil {
		return nil, err
	}

	expense := entity.NewExpense(amount, typ, details, strings.TrimSpace(input.Date))
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	uc.hub.Notify()

	return &CreateExpenseOutput{Expense: expense}, nil
}

// validateExpense normalizes and validates the editable expense fields.
func validateExpense(amount decimal.Decimal, typ entity.ExpenseType, details string) (decimal.Decimal, entity.ExpenseType, string, error) {
	if !amount.IsPositive() || amount.GreaterThan(decimal.NewFromInt(valuation.MaxAmount)) {
		return decimal.Zero, "", "", domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount",
			fmt.Sprintf("amount must be a number between 0 and %d", valuation.MaxAmount),
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if !entity.ValidExpenseType(typ) {
		return decimal.Zero, "", "", domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseType,
			"type",
			fmt.Sprintf("unknown expense type %q", typ),
			domainerror.ErrInvalidExpenseType,
		)
	}
	details = strings.TrimSpace(details)
	if utf8.RuneCountInString(details) > valuation.MaxDetailsLen {
		return decimal.Zero, "", "", domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDetailsTooLong,
			"details",
			fmt.Sprintf("details must not exceed %d characters", valuation.MaxDetailsLen),
			domainerror.ErrExpenseDetailsTooLong,
		)
	}
	return amount.Round(1), typ, details, nil
}
