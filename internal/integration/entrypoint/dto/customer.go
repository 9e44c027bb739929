package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/usecase/customer"
)

// CreateCustomerRequest is the payload for creating a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerRequest is the payload for editing a customer profile.
type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreateCustomerResponse is returned after creating a customer.
type CreateCustomerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	AccessKey     string `json:"accessKey"`
	DuplicateName bool   `json:"duplicateName,omitempty"`
}

// UpdateCustomerResponse is returned after editing a customer profile.
type UpdateCustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CustomerSummaryResponse is one row of the customer list.
type CustomerSummaryResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	Address   string          `json:"address,omitempty"`
	AccessKey string          `json:"accessKey"`
	Due       decimal.Decimal `json:"due"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CustomerListResponse is the customer list payload.
type CustomerListResponse struct {
	Customers []CustomerSummaryResponse `json:"customers"`
}

// CustomerDetailResponse is the single-customer payload with full history.
type CustomerDetailResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Phone        string                `json:"phone,omitempty"`
	Address      string                `json:"address,omitempty"`
	AccessKey    string                `json:"accessKey"`
	Due          decimal.Decimal       `json:"due"`
	CreatedAt    time.Time             `json:"createdAt"`
	Transactions []TransactionResponse `json:"transactions"`
}

// DeletedCustomerResponse is one row of the recently-deleted listing.
type DeletedCustomerResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone,omitempty"`
	DeletedAt        time.Time `json:"deletedAt"`
	TransactionCount int64     `json:"transactionCount"`
	PurgeAt          time.Time `json:"purgeAt"`
}

// DeletedCustomerListResponse is the recently-deleted listing payload.
type DeletedCustomerListResponse struct {
	Customers []DeletedCustomerResponse `json:"customers"`
}

// ToCustomerListResponse maps the list use case output.
func ToCustomerListResponse(output *customer.ListCustomersOutput) CustomerListResponse {
	response := CustomerListResponse{
		Customers: make([]CustomerSummaryResponse, len(output.Customers)),
	}
	for i, c := range output.Customers {
		response.Customers[i] = CustomerSummaryResponse{
			ID:        c.ID.String(),
			Name:      c.Name,
			Phone:     c.Phone,
			Address:   c.Address,
			AccessKey: c.AccessKey,
			Due:       c.Due,
			CreatedAt: c.CreatedAt,
		}
	}
	return response
}

// ToDeletedCustomerListResponse maps the recently-deleted use case output.
func ToDeletedCustomerListResponse(output *customer.ListDeletedCustomersOutput) DeletedCustomerListResponse {
	response := DeletedCustomerListResponse{
		Customers: make([]DeletedCustomerResponse, len(output.Customers)),
	}
	for i, c := range output.Customers {
		response.Customers[i] = DeletedCustomerResponse{
			ID:               c.ID.String(),
			Name:             c.Name,
			Phone:            c.Phone,
			DeletedAt:        c.DeletedAt,
			TransactionCount: c.TransactionCount,
			PurgeAt:          c.PurgeAt,
		}
	}
	return response
}
