// Package entity defines the core business entities for the domain layer.
package entity

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Customer represents a ledger account holder.
type Customer struct {
	ID      uuid.UUID
	Name    string
	Phone   string
	Address string

	// AccessKey is the bearer secret for the read-only portal. It is
	// assigned once at creation and never regenerated on edit.
	AccessKey string

	Lifecycle Lifecycle
	DeletedAt *time.Time
	CreatedAt time.Time
}

// NewCustomer creates a new active Customer with a fresh access key.
func NewCustomer(name, phone, address string) *Customer {
	return &Customer{
		ID:        uuid.New(),
		Name:      name,
		Phone:     phone,
		Address:   address,
		AccessKey: NewAccessKey(),
		Lifecycle: LifecycleActive,
		CreatedAt: time.Now().UTC(),
	}
}

// NewAccessKey returns a 16-byte random token encoded as 32 hex characters.
func NewAccessKey() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// MarkDeleted moves the customer to the deleted state.
func (c *Customer) MarkDeleted(now time.Time) {
	c.Lifecycle = LifecycleDeleted
	c.DeletedAt = &now
}

// Restore moves the customer back to the active state.
func (c *Customer) Restore() {
	c.Lifecycle = LifecycleActive
	c.DeletedAt = nil
}
