package dto

import (
	"github.com/simrs-budget/backend/internal/domain/entity"
)

// TransactionResponse represents one SIMRS transaction in API responses. A
// voided document keeps its row with a zero amount.
type TransactionResponse struct {
	Counterparty   string `json:"counterparty"`
	Date           string `json:"date,omitempty"` // YYYY-MM-DD, empty when unparseable
	DocumentNumber string `json:"document_number"`
	BudgetItemName string `json:"budget_item_name"`
	Amount         string `json:"amount"`
	BudgetCode     string `json:"budget_code"`
	ProgramCode    string `json:"program_code"`
	ControllerName string `json:"controller_name"`
	MonthBucket    string `json:"month_bucket,omitempty"`
}

// TransactionTotalsResponse represents the aggregate line under the report.
type TransactionTotalsResponse struct {
	TotalAmount   string `json:"total_amount"`
	DocumentCount int    `json:"document_count"`
	VoidedCount   int    `json:"voided_count"`
}

// TransactionReportResponse represents the filtered transaction report.
type TransactionReportResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// ToTransactionResponse converts a domain transaction record to its DTO.
func ToTransactionResponse(txn *entity.TransactionRecord) TransactionResponse {
	date := ""
	if txn.Date != nil {
		date = txn.Date.Format("2006-01-02")
	}
	return TransactionResponse{
		Counterparty:   txn.Counterparty,
		Date:           date,
		DocumentNumber: txn.DocumentNumber,
		BudgetItemName: txn.BudgetItemName,
		Amount:         txn.Amount.StringFixed(2),
		BudgetCode:     txn.BudgetCode,
		ProgramCode:    txn.ProgramCode,
		ControllerName: txn.ControllerName,
		MonthBucket:    txn.MonthBucket,
	}
}

// ToTransactionResponses converts a slice of domain transaction records.
func ToTransactionResponses(txns []*entity.TransactionRecord) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, ToTransactionResponse(txn))
	}
	return out
}
