package dto

import "time"

// UnlockRequest is the payload for the PIN unlock endpoint.
type UnlockRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// UnlockResponse carries the session token issued on a correct PIN.
type UnlockResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SetPinRequest is the payload for setting or changing the PIN.
// CurrentPin is required only when a PIN already exists.
type SetPinRequest struct {
	CurrentPin string `json:"currentPin"`
	NewPin     string `json:"newPin" binding:"required"`
}

// SetPinResponse acknowledges a PIN change.
type SetPinResponse struct {
	Success bool `json:"success"`
}

// PinStatusResponse reports whether a PIN has been configured.
type PinStatusResponse struct {
	PinSet bool `json:"pinSet"`
}
