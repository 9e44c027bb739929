package dto

// ImportBackupResponse reports what a merge import did.
type ImportBackupResponse struct {
	CustomersCreated     int `json:"customersCreated"`
	CustomersMerged      int `json:"customersMerged"`
	TransactionsImported int `json:"transactionsImported"`
	ExpensesImported     int `json:"expensesImported"`
	RecordsDropped       int `json:"recordsDropped"`
}
