package error

import "errors"

// Customer domain errors.
var (
	// ErrCustomerNotFound is returned when a customer lookup yields no live record.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCustomerNotDeleted is returned when restore is attempted on an active customer.
	ErrCustomerNotDeleted = errors.New("customer is not deleted")

	// ErrEmptyCustomerName is returned when the customer name is empty after trimming.
	ErrEmptyCustomerName = errors.New("customer name is required")

	// ErrCustomerNameTooLong is returned when the name exceeds the maximum length.
	ErrCustomerNameTooLong = errors.New("customer name too long")

	// ErrInvalidPhone is returned when the phone number is too long or contains
	// characters outside [0-9+\-\s()].
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrAddressTooLong is returned when the address exceeds the maximum length.
	ErrAddressTooLong = errors.New("address too long")

	// ErrAccessKeyNotFound is returned when no live customer carries the access key.
	ErrAccessKeyNotFound = errors.New("invalid or expired access key")
)

// CustomerErrorCode defines error codes for customer errors.
type CustomerErrorCode string

const (
	ErrCodeEmptyCustomerName   CustomerErrorCode = "CUS-010001"
	ErrCodeCustomerNameTooLong CustomerErrorCode = "CUS-010002"
	ErrCodeInvalidPhone        CustomerErrorCode = "CUS-010003"
	ErrCodeAddressTooLong      CustomerErrorCode = "CUS-010004"
	ErrCodeCustomerNotFound    CustomerErrorCode = "CUS-010005"
	ErrCodeCustomerNotDeleted  CustomerErrorCode = "CUS-010006"
	ErrCodeAccessKeyNotFound   CustomerErrorCode = "CUS-010007"
)

// CustomerError represents a customer error with code and message.
type CustomerError struct {
	Code    CustomerErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CustomerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CustomerError) Unwrap() error {
	return e.Err
}

// NewCustomerError creates a new CustomerError with the given code and message.
func NewCustomerError(code CustomerErrorCode, field, message string, err error) *CustomerError {
	return &CustomerError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}
