// Package valuation converts raw transaction input into its signed monetary
// decomposition: total amount, amount settled and due amount.
//
// Sign convention: a positive due amount means the customer owes the
// business, a negative one means the business owes the customer. All
// monetary outputs are rounded to one decimal place (half away from zero)
// here, exactly once; readers must never re-round stored values.
package valuation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

// CropTypes is the authoritative crop enumeration, shared by the transaction
// forms and the backup validator.
var CropTypes = []string{
	"Wheat(गहुँ)",
	"Rice(धान)",
	"Maize(मकै)",
	"Rice(चामल)",
	"Gas(ग्यास)",
}

// TractorServices lists the valid tractor service sub-kinds.
var TractorServices = []string{
	entity.ServiceRotavator,
	entity.ServiceThreser,
	entity.ServiceDhungaTrolly,
	entity.ServiceGittiTrolly,
	entity.ServiceDaura,
}

// Numeric input bounds.
const (
	MaxAmount      = 99_999_999
	MaxCropRate    = 99_999
	MaxWeight      = 9_999_999
	MaxHours       = 999
	MaxMinutes     = 59
	MaxTrolleys    = 999
	MaxDetailsLen  = 200
	MaxBillPhotoKB = 500
)

// ValidCropType reports whether s is in the crop allow-list.
func ValidCropType(s string) bool {
	for _, c := range CropTypes {
		if s == c {
			return true
		}
	}
	return false
}

// ValidTractorService reports whether s is a known tractor service.
func ValidTractorService(s string) bool {
	for _, svc := range TractorServices {
		if s == svc {
			return true
		}
	}
	return false
}

// timeBased reports whether the service is billed by the hour rather than
// per trolley.
func timeBased(service string) bool {
	return service == entity.ServiceRotavator || service == entity.ServiceThreser
}

// ValidTransactionType reports whether typ is a valid sub-kind for mainType.
func ValidTransactionType(mainType entity.MainType, typ string) bool {
	switch mainType {
	case entity.MainTypeCrops:
		return typ == entity.TradeCropBuy || typ == entity.TradeCropSell
	case entity.MainTypeTractor:
		return ValidTractorService(typ)
	case entity.MainTypeCash:
		return typ == entity.CashTaken || typ == entity.CashGiven
	}
	return false
}

// Input carries the raw kind-specific fields of a transaction entry.
type Input struct {
	MainType entity.MainType
	Type     string

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
	Amount  decimal.Decimal
	Details string
}

// Result is the signed monetary decomposition of a transaction.
type Result struct {
	TotalAmount   decimal.Decimal
	AmountSettled decimal.Decimal
	DueAmount     decimal.Decimal
	Weight        decimal.Decimal // crops only
	Details       string
}

// Valuate computes the monetary decomposition for the given input. It
// returns a *domainerror.TransactionError naming the offending field when
// validation fails; nothing is partially computed.
func Valuate(in Input) (Result, error) {
	switch in.MainType {
	case entity.MainTypeCrops:
		return valuateCrops(in)
	case entity.MainTypeTractor:
		return valuateTractor(in)
	case entity.MainTypeCash:
		return valuateCash(in)
	default:
		return Result{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidMainType,
			"mainType",
			fmt.Sprintf("main type must be one of crops, tractor, cash, got %q", in.MainType),
			domainerror.ErrInvalidMainType,
		)
	}
}

// ParseWeightExpression sums a "+"-delimited list of numeric tokens.
// Invalid or empty tokens contribute 0, so a trailing "+" is harmless.
func ParseWeightExpression(expr string) decimal.Decimal {
	total := decimal.Zero
	for _, token := range strings.Split(expr, "+") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		n, err := decimal.NewFromString(token)
		if err != nil {
			continue
		}
		total = total.Add(n)
	}
	return total
}

func valuateCrops(in Input) (Result, error) {
	if !ValidTransactionType(entity.MainTypeCrops, in.Type) {
		return Result{}, invalidType(in)
	}
	if !ValidCropType(in.CropType) {
		return Result{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCropType,
			"cropType",
			fmt.Sprintf("unknown crop type %q", in.CropType),
			domainerror.ErrInvalidCropType,
		)
	}
	if err := checkRange(in.Rate, "rate", MaxCropRate); err != nil {
		return Result{}, err
	}
	if err := checkRange(in.AmountPaid, "amountPaid", MaxAmount); err != nil {
		return Result{}, err
	}

	weight := ParseWeightExpression(in.WeightInput)
	if err := checkRange(weight, "weight", MaxWeight); err != nil {
		return Result{}, err
	}
	if !weight.IsPositive() {
		return Result{}, domainerror.NewTransactionError(
			domainerror.ErrCodeZeroWeight,
			"weight",
			"weight must be greater than zero",
			domainerror.ErrZeroWeight,
		)
	}

	total := weight.Mul(in.Rate).Round(1)
	if !total.IsPositive() {
		return Result{}, zeroTotal()
	}

	var due decimal.Decimal
	var verb string
	if in.Type == entity.TradeCropSell {
		due = total.Sub(in.AmountPaid)
		verb = "Sold"
	} else {
		due = in.AmountPaid.Sub(total)
		verb = "Bought"
	}

	return Result{
		TotalAmount:   total,
		AmountSettled: in.AmountPaid.Round(1),
		DueAmount:     due.Round(1),
		Weight:        weight,
		Details:       fmt.Sprintf("%s %skg %s", verb, weight.StringFixed(1), in.CropType),
	}, nil
}

func valuateTractor(in Input) (Result, error) {
	if !ValidTransactionType(entity.MainTypeTractor, in.Type) {
		return Result{}, invalidType(in)
	}
	if err := checkRange(in.Rate, "rate", MaxAmount); err != nil {
		return Result{}, err
	}
	if err := checkRangeFloat(in.Hours, "hours", MaxHours); err != nil {
		return Result{}, err
	}
	if err := checkRangeFloat(in.Minutes, "minutes", MaxMinutes); err != nil {
		return Result{}, err
	}
	if err := checkRangeFloat(in.NumTrolleys, "numTrolleys", MaxTrolleys); err != nil {
		return Result{}, err
	}
	if err := checkRange(in.AmountPaid, "amountPaid", MaxAmount); err != nil {
		return Result{}, err
	}

	var total decimal.Decimal
	if timeBased(in.Type) {
		hours := decimal.NewFromFloat(in.Hours + in.Minutes/60)
		total = hours.Mul(in.Rate).Round(1)
	} else {
		total = decimal.NewFromFloat(in.NumTrolleys).Mul(in.Rate).Round(1)
	}
	if !total.IsPositive() {
		return Result{}, zeroTotal()
	}

	// Tractor work is always owed by the customer.
	due := total.Sub(in.AmountPaid)

	return Result{
		TotalAmount:   total,
		AmountSettled: in.AmountPaid.Round(1),
		DueAmount:     due.Round(1),
		Details:       fmt.Sprintf("%s (Rate: %s)", in.Type, in.Rate.String()),
	}, nil
}

func valuateCash(in Input) (Result, error) {
	if !ValidTransactionType(entity.MainTypeCash, in.Type) {
		return Result{}, invalidType(in)
	}
	if err := checkRange(in.Amount, "amount", MaxAmount); err != nil {
		return Result{}, err
	}
	if !in.Amount.IsPositive() {
		return Result{}, domainerror.NewTransactionError(
			domainerror.ErrCodeZeroTotalAmount,
			"amount",
			"cash amount must be greater than zero",
			domainerror.ErrZeroTotalAmount,
		)
	}

	details := strings.TrimSpace(in.Details)
	if utf8.RuneCountInString(details) > MaxDetailsLen {
		return Result{}, domainerror.NewTransactionError(
			domainerror.ErrCodeAmountOutOfRange,
			"details",
			fmt.Sprintf("details must not exceed %d characters", MaxDetailsLen),
			domainerror.ErrAmountOutOfRange,
		)
	}
	if details == "" {
		if in.Type == entity.CashTaken {
			details = "Cash Taken"
		} else {
			details = "Cash Given"
		}
	}

	amount := in.Amount.Round(1)
	due := amount
	if in.Type == entity.CashTaken {
		due = amount.Neg()
	}

	// Cash always settles in the act: no paid/due split on the entry itself.
	return Result{
		TotalAmount:   amount,
		AmountSettled: amount,
		DueAmount:     due,
		Details:       details,
	}, nil
}

func invalidType(in Input) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidTransactionType,
		"type",
		fmt.Sprintf("%q is not a valid %s transaction type", in.Type, in.MainType),
		domainerror.ErrInvalidTransactionType,
	)
}

func zeroTotal() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeZeroTotalAmount,
		"totalAmount",
		"total amount must be greater than zero",
		domainerror.ErrZeroTotalAmount,
	)
}

func checkRange(v decimal.Decimal, field string, max int64) error {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(max)) {
		return rangeError(field, max)
	}
	return nil
}

func checkRangeFloat(v float64, field string, max float64) error {
	if v < 0 || v > max {
		return rangeError(field, int64(max))
	}
	return nil
}

func rangeError(field string, max int64) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeAmountOutOfRange,
		field,
		fmt.Sprintf("%s must be a number between 0 and %d", field, max),
		domainerror.ErrAmountOutOfRange,
	)
}
