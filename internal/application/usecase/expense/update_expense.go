package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/application/stream"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for editing an expense.
type UpdateExpenseInput struct {
	ExpenseID uuid.UUID
	Amount    decimal.Decimal
	Type      entity.ExpenseType
	Details   string
	Date      string
}

// UpdateExpenseOutput represents the output of an expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense edits.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	hub         *stream.Hub
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, hub *stream.Hub) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		hub:         hub,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	amount, typ, details, err := validateExpense(input.Amount, input.Type, input.Details)
	if err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"",
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	expense.Amount = amount
	expense.Type = typ
	expense.Details = details
	if date := strings.TrimSpace(input.Date); date != "" {
		expense.Date = date
	}

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	uc.hub.Notify()

	return &UpdateExpenseOutput{Expense: expense}, nil
}
