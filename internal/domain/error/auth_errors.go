package error

import "errors"

// Auth / session domain errors.
var (
	// ErrInvalidPin is returned when PIN verification fails.
	ErrInvalidPin = errors.New("invalid PIN")

	// ErrPinNotSet is returned when unlock is attempted before a PIN exists.
	ErrPinNotSet = errors.New("no PIN has been set")

	// ErrWeakPin is returned when the PIN does not meet the minimum length.
	ErrWeakPin = errors.New("PIN must be at least 4 digits")

	// ErrInvalidToken is returned when the session token is missing, malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired session token")

	// ErrRateLimited is returned when a client exceeds the request rate limit.
	ErrRateLimited = errors.New("too many requests")
)

// AuthErrorCode defines error codes for auth errors.
type AuthErrorCode string

const (
	ErrCodeInvalidPin   AuthErrorCode = "AUTH-010001"
	ErrCodePinNotSet    AuthErrorCode = "AUTH-010002"
	ErrCodeWeakPin      AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010004"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-020001"
)
