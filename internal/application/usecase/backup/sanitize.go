package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/domain/valuation"
)

const (
	maxCustomerName = 100
	maxPhone        = 20
	maxAddress      = 200
)

var backupPhonePattern = regexp.MustCompile(`^[0-9+\-\s()]*$`)

// sanitizeDocument decodes and validates a raw backup payload. Records that
// fail a required check are dropped and counted; recoverable problems are
// clamped in place. The returned document contains only records safe to
// persist.
func sanitizeDocument(raw []byte, maxBytes int) (*Document, int, error) {
	if len(raw) > maxBytes {
		return nil, 0, domainerror.NewBackupError(
			domainerror.ErrCodeBackupTooLarge,
			fmt.Sprintf("backup exceeds the %d byte limit", maxBytes),
			domainerror.ErrBackupTooLarge,
		)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, 0, domainerror.NewBackupError(
			domainerror.ErrCodeBackupNotObject,
			"backup must be a JSON object",
			domainerror.ErrBackupNotObject,
		)
	}

	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, 0, domainerror.NewBackupError(
			domainerror.ErrCodeBackupMalformed,
			"backup file could not be decoded",
			err,
		)
	}

	dropped := 0
	clean := &Document{BackupDate: doc.BackupDate}

	for _, c := range doc.Customers {
		if rec, ok := sanitizeCustomer(c); ok {
			clean.Customers = append(clean.Customers, rec)
		} else {
			dropped++
		}
	}
	for _, t := range doc.Transactions {
		if rec, ok := sanitizeTransaction(t); ok {
			clean.Transactions = append(clean.Transactions, rec)
		} else {
			dropped++
		}
	}
	for _, e := range doc.Expenses {
		if rec, ok := sanitizeExpense(e); ok {
			clean.Expenses = append(clean.Expenses, rec)
		} else {
			dropped++
		}
	}

	if len(clean.Customers) == 0 && len(clean.Transactions) == 0 && len(clean.Expenses) == 0 {
		return nil, dropped, domainerror.NewBackupError(
			domainerror.ErrCodeBackupEmpty,
			"backup contains no valid records",
			domainerror.ErrBackupEmpty,
		)
	}

	return clean, dropped, nil
}

func sanitizeCustomer(c CustomerRecord) (CustomerRecord, bool) {
	c.Name = clampString(c.Name, maxCustomerName)
	if c.Name == "" || c.ID == "" {
		return c, false
	}

	c.Phone = strings.TrimSpace(c.Phone)
	if utf8.RuneCountInString(c.Phone) > maxPhone || !backupPhonePattern.MatchString(c.Phone) {
		c.Phone = ""
	}
	c.Address = clampString(c.Address, maxAddress)
	return c, true
}

func sanitizeTransaction(t TransactionRecord) (TransactionRecord, bool) {
	if t.ID == "" || t.CustomerID == "" || strings.TrimSpace(t.Date) == "" {
		return t, false
	}

	mainType := entity.MainType(t.MainType)
	if !valuation.ValidTransactionType(mainType, t.Type) {
		return t, false
	}
	if mainType == entity.MainTypeCrops && !valuation.ValidCropType(t.CropType) {
		return t, false
	}

	if !inRange(t.TotalAmount, valuation.MaxAmount) || t.TotalAmount.IsNegative() {
		return t, false
	}
	if !inRange(t.AmountPaid, valuation.MaxAmount) || t.AmountPaid.IsNegative() {
		return t, false
	}
	// Due amount is signed; only its magnitude is bounded.
	if !inRange(t.DueAmount.Abs(), valuation.MaxAmount) {
		return t, false
	}

	t.Date = strings.TrimSpace(t.Date)
	t.Details = clampString(t.Details, valuation.MaxDetailsLen)
	if len(t.BillPhoto) > valuation.MaxBillPhotoKB*1024 {
		t.BillPhoto = ""
	}
	return t, true
}

func sanitizeExpense(e ExpenseRecord) (ExpenseRecord, bool) {
	if e.ID == "" || strings.TrimSpace(e.Date) == "" {
		return e, false
	}
	if !e.Amount.IsPositive() || !inRange(e.Amount, valuation.MaxAmount) {
		return e, false
	}

	// Unknown expense types collapse to Other instead of being dropped.
	if !entity.ValidExpenseType(entity.ExpenseType(e.Type)) {
		e.Type = string(entity.ExpenseOther)
	}
	e.Date = strings.TrimSpace(e.Date)
	e.Details = clampString(e.Details, valuation.MaxDetailsLen)
	return e, true
}

// clampString trims and caps a string at max characters. Truncation works
// on runes so a multi-byte character is never cut in half.
func clampString(s string, max int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > max {
		s = string([]rune(s)[:max])
	}
	return s
}

func inRange(v decimal.Decimal, max int64) bool {
	return v.LessThanOrEqual(decimal.NewFromInt(max))
}
