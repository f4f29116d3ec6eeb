package dto

import (
	"time"

	"github.com/simrs-budget/backend/internal/domain/entity"
)

// DatasetStatusResponse represents the current snapshot's load metadata,
// including how many source rows each ledger build dropped.
type DatasetStatusResponse struct {
	Source              string     `json:"source"`
	LoadedAt            time.Time  `json:"loaded_at"`
	LastTransactionDate *time.Time `json:"last_transaction_date,omitempty"`
	AllocationCount     int        `json:"allocation_count"`
	TransactionCount    int        `json:"transaction_count"`
	DroppedAllocations  int        `json:"dropped_allocations"`
	DroppedTransactions int        `json:"dropped_transactions"`
	Months              []string   `json:"months"`
}

// ToDatasetStatusResponse converts a dataset snapshot to its status DTO.
func ToDatasetStatusResponse(ds *entity.Dataset) DatasetStatusResponse {
	return DatasetStatusResponse{
		Source:              string(ds.Source),
		LoadedAt:            ds.LoadedAt,
		LastTransactionDate: ds.LastTransactionDate,
		AllocationCount:     len(ds.Allocations),
		TransactionCount:    len(ds.Transactions),
		DroppedAllocations:  ds.DroppedAllocations,
		DroppedTransactions: ds.DroppedTransactions,
		Months:              ds.Months(),
	}
}
