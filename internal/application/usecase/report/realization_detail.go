package report

import (
	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/domain/entity"
)

// RealizationDetailOutput represents the drill-down for one budget line: the
// non-voided transactions attributed to it plus their running total.
type RealizationDetailOutput struct {
	Transactions  []*entity.TransactionRecord
	TotalAmount   decimal.Decimal
	DocumentCount int
}

// RealizationDetailUseCase lists the positive-amount transactions behind one
// realization row, identified by its join key.
type RealizationDetailUseCase struct{}

// NewRealizationDetailUseCase creates a new RealizationDetailUseCase instance.
func NewRealizationDetailUseCase() *RealizationDetailUseCase {
	return &RealizationDetailUseCase{}
}

// Execute collects the matching transactions in table order. Voided (zero
// amount) documents are excluded from the drill-down.
func (uc *RealizationDetailUseCase) Execute(
	transactions []*entity.TransactionRecord,
	joinKey string,
) *RealizationDetailOutput {
	output := &RealizationDetailOutput{TotalAmount: decimal.Zero}

	for _, txn := range transactions {
		if txn.JoinKey != joinKey || !txn.Amount.IsPositive() {
			continue
		}
		output.Transactions = append(output.Transactions, txn)
		output.TotalAmount = output.TotalAmount.Add(txn.Amount)
		output.DocumentCount++
	}

	return output
}
