// Package backup contains the export and merge-import use cases.
package backup

import "github.com/shopspring/decimal"

// Document is the backup wire format. Field names follow the export files
// users already hold, so old backups keep importing. Decoding into these
// typed records is also the structural whitelist: unknown fields fall away.
type Document struct {
	Customers    []CustomerRecord    `json:"customers"`
	Transactions []TransactionRecord `json:"transactions"`
	Expenses     []ExpenseRecord     `json:"expenses"`
	BackupDate   string              `json:"backupDate,omitempty"`
}

// CustomerRecord is a customer in the backup document.
type CustomerRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	AccessKey string `json:"accessKey,omitempty"`
	IsDeleted bool   `json:"isDeleted,omitempty"`
	DeletedAt string `json:"deletedAt,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// TransactionRecord is a ledger entry in the backup document.
type TransactionRecord struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	MainType    string          `json:"mainType"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
	Details     string          `json:"details,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	DueAmount   decimal.Decimal `json:"dueAmount"`
	CropType    string          `json:"cropType,omitempty"`
	Weight      decimal.Decimal `json:"weight,omitempty"`
	WeightInput string          `json:"weightInput,omitempty"`
	Rate        decimal.Decimal `json:"rate,omitempty"`
	Hours       float64         `json:"hours,omitempty"`
	Minutes     float64         `json:"minutes,omitempty"`
	NumTrolleys float64         `json:"numTrolleys,omitempty"`
	BillPhoto   string          `json:"billPhoto,omitempty"`
	IsDeleted   bool            `json:"isDeleted,omitempty"`
	DeletedAt   string          `json:"deletedAt,omitempty"`
	CreatedAt   string          `json:"createdAt,omitempty"`
}

// ExpenseRecord is a business expense in the backup document.
type ExpenseRecord struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Details   string          `json:"details,omitempty"`
	Date      string          `json:"date"`
	CreatedAt string          `json:"createdAt,omitempty"`
}
