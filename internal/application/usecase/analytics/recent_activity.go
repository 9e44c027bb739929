package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/adapter"
)

// Activity kinds.
const (
	ActivityTransaction = "transaction"
	ActivityExpense     = "expense"
)

// ActivityItem is one row of the merged activity feed.
type ActivityItem struct {
	Kind       string
	ID         uuid.UUID
	CustomerID uuid.UUID // zero for expenses
	Details    string
	Amount     decimal.Decimal
	Date       string
	CreatedAt  time.Time
}

// RecentActivityInput represents the input for the activity feed.
type RecentActivityInput struct {
	Limit int
}

// RecentActivityOutput represents the output of the activity feed.
type RecentActivityOutput struct {
	Items []*ActivityItem
}

// RecentActivityUseCase merges transactions and expenses into a single feed
// ordered by creation time descending.
type RecentActivityUseCase struct {
	transactionRepo adapter.TransactionRepository
	expenseRepo     adapter.ExpenseRepository
}

// NewRecentActivityUseCase creates a new RecentActivityUseCase instance.
func NewRecentActivityUseCase(
	transactionRepo adapter.TransactionRepository,
	expenseRepo adapter.ExpenseRepository,
) *RecentActivityUseCase {
	return &RecentActivityUseCase{
		transactionRepo: transactionRepo,
		expenseRepo:     expenseRepo,
	}
}

// Execute performs the feed assembly.
func (uc *RecentActivityUseCase) Execute(ctx context.Context, input RecentActivityInput) (*RecentActivityOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	transactions, err := uc.transactionRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	items := make([]*ActivityItem, 0, len(transactions)+len(expenses))
	for _, t := range transactions {
		items = append(items, &ActivityItem{
			Kind:       ActivityTransaction,
			ID:         t.ID,
			CustomerID: t.CustomerID,
			Details:    t.Details,
			Amount:     t.TotalAmount,
			Date:       t.Date,
			CreatedAt:  t.CreatedAt,
		})
	}
	for _, e := range expenses {
		items = append(items, &ActivityItem{
			Kind:      ActivityExpense,
			ID:        e.ID,
			Details:   e.Details,
			Amount:    e.Amount,
			Date:      e.Date,
			CreatedAt: e.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	if len(items) > limit {
		items = items[:limit]
	}

	return &RecentActivityOutput{Items: items}, nil
}
