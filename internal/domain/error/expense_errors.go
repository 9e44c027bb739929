package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the expense amount is not positive
	// or exceeds the allowed range.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrInvalidExpenseType is returned when the expense type is not in the allow-list.
	ErrInvalidExpenseType = errors.New("invalid expense type")

	// ErrExpenseDetailsTooLong is returned when the details exceed the maximum length.
	ErrExpenseDetailsTooLong = errors.New("expense details too long")
)

// ExpenseErrorCode defines error codes for expense errors.
type ExpenseErrorCode string

const (
	ErrCodeInvalidExpenseAmount  ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseType    ExpenseErrorCode = "EXP-010002"
	ErrCodeExpenseDetailsTooLong ExpenseErrorCode = "EXP-010003"
	ErrCodeExpenseNotFound       ExpenseErrorCode = "EXP-010004"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, field, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}
