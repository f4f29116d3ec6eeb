package entity

import "github.com/shopspring/decimal"

// RealizationRow is one allocation line joined with its aggregated realization
// for the active month filter. Every allocation line appears exactly once in a
// report (left join); lines with no matching transactions carry zeroes.
type RealizationRow struct {
	AllocationLine

	RealizedAmount     decimal.Decimal
	TransactionCount   int // matching transactions with amount > 0
	Remaining          decimal.Decimal
	UtilizationPercent decimal.Decimal // 0 when BudgetAmount is 0
}

// RollupTotalName is the controller name of the synthetic grand-total row
// appended to every controller rollup.
const RollupTotalName = "TOTAL"

// ControllerRollupRow aggregates a realization report per controller. The
// utilization percentage is recomputed from the summed amounts, never averaged
// from member percentages.
type ControllerRollupRow struct {
	ControllerName     string
	BudgetAmount       decimal.Decimal
	RealizedAmount     decimal.Decimal
	UtilizationPercent decimal.Decimal
}
