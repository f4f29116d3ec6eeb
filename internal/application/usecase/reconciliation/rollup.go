package reconciliation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/domain/entity"
)

// Rollup aggregates a realization report per controller and appends one
// synthetic TOTAL row. Groups are ordered by controller name. Percentages are
// recomputed from the summed amounts; summing or averaging the per-row
// percentages would be wrong whenever budgets differ.
func Rollup(report []*entity.RealizationRow) []*entity.ControllerRollupRow {
	type group struct {
		budget   decimal.Decimal
		realized decimal.Decimal
	}

	groups := make(map[string]group)
	for _, row := range report {
		g := groups[row.ControllerName]
		g.budget = g.budget.Add(row.BudgetAmount)
		g.realized = g.realized.Add(row.RealizedAmount)
		groups[row.ControllerName] = g
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]*entity.ControllerRollupRow, 0, len(groups)+1)
	totalBudget := decimal.Zero
	totalRealized := decimal.Zero
	for _, name := range names {
		g := groups[name]
		rows = append(rows, &entity.ControllerRollupRow{
			ControllerName:     name,
			BudgetAmount:       g.budget,
			RealizedAmount:     g.realized,
			UtilizationPercent: utilization(g.realized, g.budget),
		})
		totalBudget = totalBudget.Add(g.budget)
		totalRealized = totalRealized.Add(g.realized)
	}

	rows = append(rows, &entity.ControllerRollupRow{
		ControllerName:     entity.RollupTotalName,
		BudgetAmount:       totalBudget,
		RealizedAmount:     totalRealized,
		UtilizationPercent: utilization(totalRealized, totalBudget),
	})

	return rows
}
