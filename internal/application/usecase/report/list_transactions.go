package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/domain/entity"
)

// ListTransactionsInput represents the filter criteria for the SIMRS
// transaction report. All criteria are combined with AND; omitted criteria
// pass everything.
type ListTransactionsInput struct {
	Counterparties  []string
	BudgetItemNames []string
	ControllerNames []string
	ProgramCodes    []string
	StartDate       *time.Time
	EndDate         *time.Time
	Search          string // case-insensitive substring match on document number
}

// TransactionTotals represents the aggregate figures shown under the report.
type TransactionTotals struct {
	TotalAmount   decimal.Decimal
	DocumentCount int // transactions with amount > 0
	VoidedCount   int // transactions with amount == 0
}

// ListTransactionsOutput represents the filtered report and its totals.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionRecord
	Totals       TransactionTotals
}

// ListTransactionsUseCase narrows the built transaction table to the given
// criteria. It is a pure computation over the current snapshot.
type ListTransactionsUseCase struct{}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase() *ListTransactionsUseCase {
	return &ListTransactionsUseCase{}
}

// Execute applies the filters and computes totals. Output order is the table's
// own order; the report never resorts.
func (uc *ListTransactionsUseCase) Execute(
	transactions []*entity.TransactionRecord,
	input ListTransactionsInput,
) *ListTransactionsOutput {
	output := &ListTransactionsOutput{
		Totals: TransactionTotals{TotalAmount: decimal.Zero},
	}

	for _, txn := range transactions {
		if !memberOf(txn.Counterparty, input.Counterparties) {
			continue
		}
		if !memberOf(txn.BudgetItemName, input.BudgetItemNames) {
			continue
		}
		if !memberOf(txn.ControllerName, input.ControllerNames) {
			continue
		}
		if !memberOf(txn.ProgramCode, input.ProgramCodes) {
			continue
		}
		if !inDateRange(txn.Date, input.StartDate, input.EndDate) {
			continue
		}
		if !containsFold(txn.DocumentNumber, input.Search) {
			continue
		}

		output.Transactions = append(output.Transactions, txn)
		output.Totals.TotalAmount = output.Totals.TotalAmount.Add(txn.Amount)
		if txn.Amount.IsPositive() {
			output.Totals.DocumentCount++
		} else if txn.Amount.IsZero() {
			output.Totals.VoidedCount++
		}
	}

	return output
}
