package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/usecase/analytics"
)

// OverviewResponse is the dashboard headline payload.
type OverviewResponse struct {
	Period          string          `json:"period"`
	ToCollect       decimal.Decimal `json:"toCollect"`
	ToPay           decimal.Decimal `json:"toPay"`
	TractorRevenue  decimal.Decimal `json:"tractorRevenue"`
	TractorExpenses decimal.Decimal `json:"tractorExpenses"`
	TractorNet      decimal.Decimal `json:"tractorNet"`
}

// CropStatsResponse is the per-crop breakdown of the crop analysis.
type CropStatsResponse struct {
	Crop         string          `json:"crop"`
	BoughtKg     decimal.Decimal `json:"boughtKg"`
	BoughtAmount decimal.Decimal `json:"boughtAmount"`
	SoldKg       decimal.Decimal `json:"soldKg"`
	SoldAmount   decimal.Decimal `json:"soldAmount"`
	Profit       decimal.Decimal `json:"profit"`
	InventoryKg  decimal.Decimal `json:"inventoryKg"`
}

// CropAnalysisResponse is the crop business report payload.
type CropAnalysisResponse struct {
	Period   string              `json:"period"`
	Invested decimal.Decimal     `json:"invested"`
	Sales    decimal.Decimal     `json:"sales"`
	Profit   decimal.Decimal     `json:"profit"`
	Crops    []CropStatsResponse `json:"crops"`
}

// ActivityItemResponse is one row of the recent activity feed.
type ActivityItemResponse struct {
	Kind       string          `json:"kind"`
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId,omitempty"`
	Details    string          `json:"details,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// RecentActivityResponse is the recent activity payload.
type RecentActivityResponse struct {
	Items []ActivityItemResponse `json:"items"`
}

// ToOverviewResponse maps the overview use case output.
func ToOverviewResponse(output *analytics.OverviewOutput) OverviewResponse {
	return OverviewResponse{
		Period:          string(output.Period),
		ToCollect:       output.ToCollect,
		ToPay:           output.ToPay,
		TractorRevenue:  output.TractorRevenue,
		TractorExpenses: output.TractorExpenses,
		TractorNet:      output.TractorNet,
	}
}

// ToCropAnalysisResponse maps the crop analysis use case output.
func ToCropAnalysisResponse(output *analytics.CropAnalysisOutput) CropAnalysisResponse {
	response := CropAnalysisResponse{
		Period:   string(output.Period),
		Invested: output.Invested,
		Sales:    output.Sales,
		Profit:   output.Profit,
		Crops:    make([]CropStatsResponse, len(output.Crops)),
	}
	for i, crop := range output.Crops {
		response.Crops[i] = CropStatsResponse{
			Crop:         crop.Crop,
			BoughtKg:     crop.BoughtKg,
			BoughtAmount: crop.BoughtAmount,
			SoldKg:       crop.SoldKg,
			SoldAmount:   crop.SoldAmount,
			Profit:       crop.Profit,
			InventoryKg:  crop.InventoryKg,
		}
	}
	return response
}

// ToRecentActivityResponse maps the recent activity use case output.
func ToRecentActivityResponse(output *analytics.RecentActivityOutput) RecentActivityResponse {
	response := RecentActivityResponse{
		Items: make([]ActivityItemResponse, len(output.Items)),
	}
	for i, item := range output.Items {
		row := ActivityItemResponse{
			Kind:      item.Kind,
			ID:        item.ID.String(),
			Details:   item.Details,
			Amount:    item.Amount,
			Date:      item.Date,
			CreatedAt: item.CreatedAt,
		}
		if item.CustomerID != uuid.Nil {
			row.CustomerID = item.CustomerID.String()
		}
		response.Items[i] = row
	}
	return response
}
