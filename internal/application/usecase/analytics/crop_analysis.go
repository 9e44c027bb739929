package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/domain/entity"
)

// CropAnalysisInput represents the input for the crop trading report.
type CropAnalysisInput struct {
	Period Period
}

// CropStats is the per-crop breakdown. Crops are keyed by lower-cased crop
// type so "Wheat" and "wheat" from imported data fold together. Bought,
// sold and profit respect the period; InventoryKg is always lifetime.
type CropStats struct {
	Crop         string
	BoughtKg     decimal.Decimal
	BoughtAmount decimal.Decimal
	SoldKg       decimal.Decimal
	SoldAmount   decimal.Decimal
	Profit       decimal.Decimal
	InventoryKg  decimal.Decimal
}

// CropAnalysisOutput represents the output of the crop trading report.
type CropAnalysisOutput struct {
	Period   Period
	Invested decimal.Decimal
	Sales    decimal.Decimal
	Profit   decimal.Decimal
	Crops    []*CropStats
}

// CropAnalysisUseCase computes per-crop trading figures.
type CropAnalysisUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewCropAnalysisUseCase creates a new CropAnalysisUseCase instance.
func NewCropAnalysisUseCase(
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *CropAnalysisUseCase {
	return &CropAnalysisUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute performs the crop analysis. Lifetime transactions are fetched once
// and the period filter is applied in memory, so inventory and period
// figures come from the same snapshot.
func (uc *CropAnalysisUseCase) Execute(ctx context.Context, input CropAnalysisInput) (*CropAnalysisOutput, error) {
	mainType := entity.MainTypeCrops
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{MainType: &mainType})
	if err != nil {
		return nil, fmt.Errorf("failed to list crop transactions: %w", err)
	}

	cutoff := CutoffDate(input.Period, uc.clock.Now())
	stats := make(map[string]*CropStats)

	for _, t := range transactions {
		crop := strings.ToLower(strings.TrimSpace(t.CropType))
		if crop == "" {
			continue
		}
		s, ok := stats[crop]
		if !ok {
			s = &CropStats{Crop: crop}
			stats[crop] = s
		}

		switch t.Type {
		case entity.TradeCropBuy:
			s.InventoryKg = s.InventoryKg.Add(t.Weight)
			if InPeriod(t.Date, cutoff) {
				s.BoughtKg = s.BoughtKg.Add(t.Weight)
				s.BoughtAmount = s.BoughtAmount.Add(t.TotalAmount)
			}
		case entity.TradeCropSell:
			s.InventoryKg = s.InventoryKg.Sub(t.Weight)
			if InPeriod(t.Date, cutoff) {
				s.SoldKg = s.SoldKg.Add(t.Weight)
				s.SoldAmount = s.SoldAmount.Add(t.TotalAmount)
			}
		}
	}

	out := &CropAnalysisOutput{Period: input.Period}
	for _, s := range stats {
		s.Profit = s.SoldAmount.Sub(s.BoughtAmount)
		out.Invested = out.Invested.Add(s.BoughtAmount)
		out.Sales = out.Sales.Add(s.SoldAmount)
		out.Crops = append(out.Crops, s)
	}
	out.Profit = out.Sales.Sub(out.Invested)

	sort.Slice(out.Crops, func(i, j int) bool { return out.Crops[i].Crop < out.Crops[j].Crop })

	return out, nil
}
