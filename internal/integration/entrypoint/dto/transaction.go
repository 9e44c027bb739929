package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/domain/entity"
)

// RecordTransactionRequest is the payload for recording or rewriting a
// ledger entry. Which fields matter depends on mainType; the rest are
// ignored by valuation.
type RecordTransactionRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
	MainType   string `json:"mainType" binding:"required"`
	Type       string `json:"type"`
	Date       string `json:"date" binding:"required"`

	CropType    string `json:"cropType"`
	WeightInput string `json:"weightInput"`

	Rate       float64 `json:"rate"`
	AmountPaid float64 `json:"amountPaid"`

	Hours       float64 `json:"hours"`
	Minutes     float64 `json:"minutes"`
	NumTrolleys float64 `json:"numTrolleys"`

	Amount float64 `json:"amount"`

	Details   string `json:"details"`
	BillPhoto string `json:"billPhoto"`
}

// TransactionResponse is a single ledger entry payload.
type TransactionResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	MainType   string `json:"mainType"`
	Type       string `json:"type"`
	Date       string `json:"date"`
	Details    string `json:"details,omitempty"`

	TotalAmount decimal.Decimal `json:"totalAmount"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	DueAmount   decimal.Decimal `json:"dueAmount"`

	CropType    string          `json:"cropType,omitempty"`
	Weight      decimal.Decimal `json:"weight"`
	WeightInput string          `json:"weightInput,omitempty"`

	Rate        decimal.Decimal `json:"rate"`
	Hours       float64         `json:"hours,omitempty"`
	Minutes     float64         `json:"minutes,omitempty"`
	NumTrolleys float64         `json:"numTrolleys,omitempty"`

	BillPhoto string    `json:"billPhoto,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TransactionListResponse is the transaction listing payload.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse maps a domain transaction to its payload.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		CustomerID:  txn.CustomerID.String(),
		MainType:    string(txn.MainType),
		Type:        txn.Type,
		Date:        txn.Date,
		Details:     txn.Details,
		TotalAmount: txn.TotalAmount,
		AmountPaid:  txn.AmountPaid,
		DueAmount:   txn.DueAmount,
		CropType:    txn.CropType,
		Weight:      txn.Weight,
		WeightInput: txn.WeightInput,
		Rate:        txn.Rate,
		Hours:       txn.Hours,
		Minutes:     txn.Minutes,
		NumTrolleys: txn.NumTrolleys,
		BillPhoto:   txn.BillPhoto,
		CreatedAt:   txn.CreatedAt,
	}
}

// ToTransactionListResponse maps a slice of domain transactions.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, len(transactions)),
	}
	for i, txn := range transactions {
		response.Transactions[i] = ToTransactionResponse(txn)
	}
	return response
}
