// Package error defines domain-specific errors for the Khata Ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidMainType is returned when the transaction main type is not crops, tractor or cash.
	ErrInvalidMainType = errors.New("invalid transaction main type")

	// ErrInvalidTransactionType is returned when the sub-kind is not valid for the main type.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidCropType is returned when the crop type is not in the allow-list.
	ErrInvalidCropType = errors.New("invalid crop type")

	// ErrZeroWeight is returned when a crop transaction has no positive weight.
	ErrZeroWeight = errors.New("weight must be greater than zero")

	// ErrZeroTotalAmount is returned when the computed total amount is not positive.
	ErrZeroTotalAmount = errors.New("total amount must be greater than zero")

	// ErrAmountOutOfRange is returned when a numeric field is outside its allowed range.
	ErrAmountOutOfRange = errors.New("amount out of range")

	// ErrMissingTransactionDate is returned when no date is supplied.
	ErrMissingTransactionDate = errors.New("transaction date is required")

	// ErrBillPhotoTooLarge is returned when the inline bill photo exceeds the size cap.
	ErrBillPhotoTooLarge = errors.New("bill photo too large")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMainType        TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidCropType        TransactionErrorCode = "TXN-010003"
	ErrCodeZeroWeight             TransactionErrorCode = "TXN-010004"
	ErrCodeZeroTotalAmount        TransactionErrorCode = "TXN-010005"
	ErrCodeAmountOutOfRange       TransactionErrorCode = "TXN-010006"
	ErrCodeMissingDate            TransactionErrorCode = "TXN-010007"
	ErrCodeTransactionNotFound    TransactionErrorCode = "TXN-010008"
	ErrCodeBillPhotoTooLarge      TransactionErrorCode = "TXN-010009"
)

// TransactionError represents a transaction error with code and message.
// Field names the offending input field for validation errors.
type TransactionError struct {
	Code    TransactionErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, field, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}
