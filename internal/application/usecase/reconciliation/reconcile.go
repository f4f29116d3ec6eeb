// Package reconciliation joins the allocation ledger to aggregated SIMRS
// transactions and computes the realization report and controller rollup.
package reconciliation

import (
	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// keyAggregate is the per-joinKey aggregate of the filtered transactions.
type keyAggregate struct {
	realized decimal.Decimal
	count    int
}

// Reconcile left-joins the allocation table to the transaction table by join
// key and computes realized amount, remaining balance and utilization per
// allocation line.
//
// months is the active month-bucket filter; an empty slice means no filtering.
// Every allocation line appears exactly once in the result, in input order.
// When duplicate budget codes exist in the allocation source, each duplicate
// receives the same aggregate (fan-out of a many-to-one join); the transaction
// sum is neither split between them nor dropped.
func Reconcile(
	allocations []*entity.AllocationLine,
	transactions []*entity.TransactionRecord,
	months []string,
) []*entity.RealizationRow {
	monthSet := make(map[string]struct{}, len(months))
	for _, m := range months {
		monthSet[m] = struct{}{}
	}

	aggregates := make(map[string]keyAggregate)
	for _, txn := range transactions {
		if len(monthSet) > 0 {
			if _, ok := monthSet[txn.MonthBucket]; !ok {
				continue
			}
		}
		agg := aggregates[txn.JoinKey]
		agg.realized = agg.realized.Add(txn.Amount)
		if txn.Amount.IsPositive() {
			// Zero-amount documents are voided and do not count.
			agg.count++
		}
		aggregates[txn.JoinKey] = agg
	}

	rows := make([]*entity.RealizationRow, 0, len(allocations))
	for _, line := range allocations {
		agg := aggregates[line.JoinKey]

		row := &entity.RealizationRow{
			AllocationLine:   *line,
			RealizedAmount:   agg.realized,
			TransactionCount: agg.count,
			Remaining:        line.BudgetAmount.Sub(agg.realized),
		}
		row.UtilizationPercent = utilization(agg.realized, line.BudgetAmount)
		rows = append(rows, row)
	}

	return rows
}

// utilization computes realized/budget*100, defined as 0 for a zero budget.
func utilization(realized, budget decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}
	return realized.Div(budget).Mul(oneHundred)
}
