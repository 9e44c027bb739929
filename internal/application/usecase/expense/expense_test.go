package expense

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/khata-ledger/backend/internal/application/stream"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/domain/valuation"
)

// fakeExpenseRepo is an in-memory adapter.ExpenseRepository.
type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.expenses[e.ID] = e
	return nil
}

func (r *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	return e, nil
}

func (r *fakeExpenseRepo) List(_ context.Context) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeExpenseRepo) ListSince(_ context.Context, sinceDate string) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		if e.Date >= sinceDate {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	r.expenses[e.ID] = e
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.expenses[id]; !ok {
		return domainerror.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}

func TestCreateExpense(t *testing.T) {
	t.Run("rounds amount and trims details", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		uc := NewCreateExpenseUseCase(repo, stream.NewHub())

		out, err := uc.Execute(context.Background(), CreateExpenseInput{
			Amount:  decimal.RequireFromString("149.96"),
			Type:    entity.ExpenseTractorDiesel,
			Details: "  filled the tank  ",
			Date:    "2025-06-10",
		})
		require.NoError(t, err)
		require.True(t, out.Expense.Amount.Equal(decimal.RequireFromString("150.0")))
		require.Equal(t, "filled the tank", out.Expense.Details)
		require.Contains(t, repo.expenses, out.Expense.ID)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		uc := NewCreateExpenseUseCase(newFakeExpenseRepo(), stream.NewHub())
		_, err := uc.Execute(context.Background(), CreateExpenseInput{
			Amount: decimal.Zero,
			Type:   entity.ExpenseLabor,
			Date:   "2025-06-10",
		})
		require.ErrorIs(t, err, domainerror.ErrInvalidExpenseAmount)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		uc := NewCreateExpenseUseCase(newFakeExpenseRepo(), stream.NewHub())
		_, err := uc.Execute(context.Background(), CreateExpenseInput{
			Amount: decimal.NewFromInt(10),
			Type:   entity.ExpenseType("petrol"),
			Date:   "2025-06-10",
		})
		var expErr *domainerror.ExpenseError
		require.ErrorAs(t, err, &expErr)
		require.Equal(t, domainerror.ErrCodeInvalidExpenseType, expErr.Code)
		require.Equal(t, "type", expErr.Field)
	})

	t.Run("details limit counts characters not bytes", func(t *testing.T) {
		uc := NewCreateExpenseUseCase(newFakeExpenseRepo(), stream.NewHub())
		details := strings.Repeat("ध", valuation.MaxDetailsLen)
		out, err := uc.Execute(context.Background(), CreateExpenseInput{
			Amount:  decimal.NewFromInt(10),
			Type:    entity.ExpenseOther,
			Details: details,
			Date:    "2025-06-10",
		})
		require.NoError(t, err)
		require.Equal(t, details, out.Expense.Details)
	})

	t.Run("rejects overlong details", func(t *testing.T) {
		uc := NewCreateExpenseUseCase(newFakeExpenseRepo(), stream.NewHub())
		_, err := uc.Execute(context.Background(), CreateExpenseInput{
			Amount:  decimal.NewFromInt(10),
			Type:    entity.ExpenseOther,
			Details: strings.Repeat("x", valuation.MaxDetailsLen+1),
			Date:    "2025-06-10",
		})
		require.ErrorIs(t, err, domainerror.ErrExpenseDetailsTooLong)
	})
}

func TestUpdateExpense(t *testing.T) {
	repo := newFakeExpenseRepo()
	created, err := NewCreateExpenseUseCase(repo, stream.NewHub()).Execute(context.Background(), CreateExpenseInput{
		Amount: decimal.NewFromInt(100),
		Type:   entity.ExpenseStorageRent,
		Date:   "2025-06-10",
	})
	require.NoError(t, err)

	uc := NewUpdateExpenseUseCase(repo, stream.NewHub())
	out, err := uc.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID: created.Expense.ID,
		Amount:    decimal.NewFromInt(250),
		Type:      entity.ExpenseTractorRepair,
		Details:   "clutch plate",
		// Empty date keeps the recorded one.
	})
	require.NoError(t, err)
	require.Equal(t, created.Expense.ID, out.Expense.ID)
	require.True(t, out.Expense.Amount.Equal(decimal.NewFromInt(250)))
	require.Equal(t, entity.ExpenseTractorRepair, out.Expense.Type)
	require.Equal(t, "2025-06-10", out.Expense.Date)

	_, err = uc.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID: uuid.New(),
		Amount:    decimal.NewFromInt(1),
		Type:      entity.ExpenseOther,
	})
	var expErr *domainerror.ExpenseError
	require.ErrorAs(t, err, &expErr)
	require.Equal(t, domainerror.ErrCodeExpenseNotFound, expErr.Code)
}

func TestDeleteExpense(t *testing.T) {
	repo := newFakeExpenseRepo()
	created, err := NewCreateExpenseUseCase(repo, stream.NewHub()).Execute(context.Background(), CreateExpenseInput{
		Amount: decimal.NewFromInt(40),
		Type:   entity.ExpenseLabor,
		Date:   "2025-06-10",
	})
	require.NoError(t, err)

	uc := NewDeleteExpenseUseCase(repo, stream.NewHub())
	_, err = uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: created.Expense.ID})
	require.NoError(t, err)
	require.Empty(t, repo.expenses)

	_, err = uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: created.Expense.ID})
	var expErr *domainerror.ExpenseError
	require.ErrorAs(t, err, &expErr)
	require.Equal(t, domainerror.ErrCodeExpenseNotFound, expErr.Code)
}
