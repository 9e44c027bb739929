package dto

import (
	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/application/usecase/portal"
)

// StatementResponse is the read-only customer statement served to the
// portal. It intentionally exposes no identifiers beyond the display name.
type StatementResponse struct {
	CustomerName string                `json:"customerName"`
	Due          decimal.Decimal       `json:"due"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToStatementResponse maps the portal use case output.
func ToStatementResponse(output *portal.GetStatementOutput) StatementResponse {
	response := StatementResponse{
		CustomerName: output.CustomerName,
		Due:          output.Due,
		Transactions: make([]TransactionResponse, len(output.Transactions)),
	}
	for i, txn := range output.Transactions {
		response.Transactions[i] = ToTransactionResponse(txn)
	}
	return response
}
