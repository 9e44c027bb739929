package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/domain/entity"
)

// OverviewInput represents the input for the business overview report.
type OverviewInput struct {
	Period Period
}

// OverviewOutput represents the output of the business overview report.
// ToCollect and ToPay are both reported as non-negative magnitudes.
type OverviewOutput struct {
	Period          Period
	ToCollect       decimal.Decimal
	ToPay           decimal.Decimal
	TractorRevenue  decimal.Decimal
	TractorExpenses decimal.Decimal
	TractorNet      decimal.Decimal
}

// OverviewUseCase computes the dashboard headline numbers for a period.
type OverviewUseCase struct {
	transactionRepo adapter.TransactionRepository
	expenseRepo     adapter.ExpenseRepository
	clock           adapter.Clock
}

// NewOverviewUseCase creates a new OverviewUseCase instance.
func NewOverviewUseCase(
	transactionRepo adapter.TransactionRepository,
	expenseRepo adapter.ExpenseRepository,
	clock adapter.Clock,
) *OverviewUseCase {
	return &OverviewUseCase{
		transactionRepo: transactionRepo,
		expenseRepo:     expenseRepo,
		clock:           clock,
	}
}

// Execute performs the overview computation.
func (uc *OverviewUseCase) Execute(ctx context.Context, input OverviewInput) (*OverviewOutput, error) {
	cutoff := CutoffDate(input.Period, uc.clock.Now())

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{SinceDate: cutoff})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	expenses, err := uc.expenseRepo.ListSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	// Per-customer nets first, then split into the two directions. A
	// customer owing 500 on crops and owed 200 on cash nets out to 300 to
	// collect, not 500 and 200 on both sides.
	nets := make(map[uuid.UUID]decimal.Decimal)
	tractorRevenue := decimal.Zero
	for _, t := range transactions {
		nets[t.CustomerID] = nets[t.CustomerID].Add(t.DueAmount)
		if t.MainType == entity.MainTypeTractor {
			tractorRevenue = tractorRevenue.Add(t.TotalAmount)
		}
	}

	toCollect := decimal.Zero
	toPay := decimal.Zero
	for _, net := range nets {
		if net.IsPositive() {
			toCollect = toCollect.Add(net)
		} else {
			toPay = toPay.Add(net.Abs())
		}
	}

	expenseTotal := decimal.Zero
	for _, e := range expenses {
		expenseTotal = expenseTotal.Add(e.Amount)
	}

	return &OverviewOutput{
		Period:          input.Period,
		ToCollect:       toCollect,
		ToPay:           toPay,
		TractorRevenue:  tractorRevenue,
		TractorExpenses: expenseTotal,
		TractorNet:      tractorRevenue.Sub(expenseTotal),
	}, nil
}
