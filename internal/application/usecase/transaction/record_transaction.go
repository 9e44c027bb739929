// Package transaction contains ledger-entry use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/application/stream"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/domain/valuation"
)

// RecordTransactionInput represents the raw input for a new ledger entry.
type RecordTransactionInput struct {
	CustomerID uuid.UUID
	MainType   entity.MainType
	Type       string

	// Date is a local-calendar "YYYY-MM-DD" string chosen by the operator.
	Date string

	// Crops
	CropType    string
	WeightInput string

	// Crops and tractor
	Rate       decimal.Decimal
	AmountPaid decimal.Decimal

	// Tractor
	Hours       float64
	Minutes     float64
	NumTrolleys float64

	// Cash
	Amount decimal.Decimal

	Details   string
	BillPhoto string
}

// RecordTransactionOutput represents the output of recording a ledger entry.
type RecordTransactionOutput struct {
	Transaction *entity.Transaction
}

// RecordTransactionUseCase validates, values and persists a ledger entry.
// All monetary amounts are derived here exactly once; they are never
// recomputed on read.
type RecordTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	customerRepo    adapter.CustomerRepository
	hub             *stream.Hub
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase instance.
func NewRecordTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	customerRepo adapter.CustomerRepository,
	hub *stream.Hub,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
		hub:             hub,
	}
}

// Execute performs the ledger-entry creation.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, input RecordTransactionInput) (*RecordTransactionOutput, error) {
	if err := validateCommon(input.Date, input.BillPhoto); err != nil {
		return nil, err
	}

	if _, err := uc.customerRepo.FindByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, domainerror.ErrCustomerNotFound) {
			return nil, domainerror.NewCustomerError(
				domainerror.ErrCodeCustomerNotFound,
				"",
				"customer not found",
				domainerror.ErrCustomerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	result, err := valuation.Valuate(valuationInput(input))
	if err != nil {
		return nil, err
	}

	txn := buildTransaction(uuid.New(), input, result, time.Now().UTC())
	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.hub.Notify()

	return &RecordTransactionOutput{Transaction: txn}, nil
}

// validateCommon checks the kind-independent fields.
func validateCommon(date, billPhoto string) error {
	if strings.TrimSpace(date) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingDate,
			"date",
			"transaction date is required",
			domainerror.ErrMissingTransactionDate,
		)
	}
	if len(billPhoto) > valuation.MaxBillPhotoKB*1024 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeBillPhotoTooLarge,
			"billPhoto",
			fmt.Sprintf("bill photo must not exceed %dKB", valuation.MaxBillPhotoKB),
			domainerror.ErrBillPhotoTooLarge,
		)
	}
	return nil
}

func valuationInput(input RecordTransactionInput) valuation.Input {
	return valuation.Input{
		MainType:    input.MainType,
		Type:        input.Type,
		CropType:    input.CropType,
		WeightInput: input.WeightInput,
		Rate:        input.Rate,
		AmountPaid:  input.AmountPaid,
		Hours:       input.Hours,
		Minutes:     input.Minutes,
		NumTrolleys: input.NumTrolleys,
		Amount:      input.Amount,
		Details:     input.Details,
	}
}

func buildTransaction(id uuid.UUID, input RecordTransactionInput, result valuation.Result, createdAt time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:          id,
		CustomerID:  input.CustomerID,
		MainType:    input.MainType,
		Type:        input.Type,
		Date:        strings.TrimSpace(input.Date),
		Details:     result.Details,
		TotalAmount: result.TotalAmount,
		AmountPaid:  result.AmountSettled,
		DueAmount:   result.DueAmount,
		CropType:    input.CropType,
		Weight:      result.Weight,
		WeightInput: input.WeightInput,
		Rate:        input.Rate,
		Hours:       input.Hours,
		Minutes:     input.Minutes,
		NumTrolleys: input.NumTrolleys,
		BillPhoto:   input.BillPhoto,
		Lifecycle:   entity.LifecycleActive,
		CreatedAt:   createdAt,
	}
}
