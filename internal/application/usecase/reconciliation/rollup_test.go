package reconciliation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/domain/entity"
)

func reportRow(controllerName string, budget, realized int64) *entity.RealizationRow {
	row := &entity.RealizationRow{
		RealizedAmount: decimal.NewFromInt(realized),
	}
	row.ControllerName = controllerName
	row.BudgetAmount = decimal.NewFromInt(budget)
	return row
}

func TestRollup(t *testing.T) {
	report := []*entity.RealizationRow{
		reportRow("INSTALASI SIM RS", 1000, 250),
		reportRow("TIM KERJA ORGANISASI & SDM", 2000, 1000),
		reportRow("INSTALASI SIM RS", 3000, 750),
	}

	rows := Rollup(report)

	t.Run("groups by controller with a trailing TOTAL row", func(t *testing.T) {
		if len(rows) != 3 {
			t.Fatalf("len(rows) = %d, want 3 (2 groups + TOTAL)", len(rows))
		}
		if rows[len(rows)-1].ControllerName != entity.RollupTotalName {
			t.Errorf("last row = %q, want TOTAL", rows[len(rows)-1].ControllerName)
		}
	})

	t.Run("group sums", func(t *testing.T) {
		simrs := rows[0]
		if simrs.ControllerName != "INSTALASI SIM RS" {
			t.Fatalf("first group = %q", simrs.ControllerName)
		}
		if !simrs.BudgetAmount.Equal(decimal.NewFromInt(4000)) {
			t.Errorf("group budget = %s, want 4000", simrs.BudgetAmount)
		}
		if !simrs.RealizedAmount.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("group realized = %s, want 1000", simrs.RealizedAmount)
		}
		if simrs.UtilizationPercent.StringFixed(2) != "25.00" {
			t.Errorf("group percent = %s, want 25.00", simrs.UtilizationPercent.StringFixed(2))
		}
	})

	t.Run("total row sums all groups", func(t *testing.T) {
		total := rows[len(rows)-1]
		if !total.BudgetAmount.Equal(decimal.NewFromInt(6000)) {
			t.Errorf("total budget = %s, want 6000", total.BudgetAmount)
		}
		if !total.RealizedAmount.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("total realized = %s, want 2000", total.RealizedAmount)
		}
	})

	t.Run("total percent comes from grand sums, not averaged percentages", func(t *testing.T) {
		total := rows[len(rows)-1]
		// 2000/6000 = 33.33%; averaging group percentages (25% and 50%)
		// would give 37.5% and is wrong.
		if total.UtilizationPercent.StringFixed(2) != "33.33" {
			t.Errorf("total percent = %s, want 33.33", total.UtilizationPercent.StringFixed(2))
		}
	})

	t.Run("empty report still yields a TOTAL row with zero percent", func(t *testing.T) {
		rows := Rollup(nil)
		if len(rows) != 1 {
			t.Fatalf("len(rows) = %d, want 1", len(rows))
		}
		total := rows[0]
		if total.ControllerName != entity.RollupTotalName {
			t.Errorf("row = %q, want TOTAL", total.ControllerName)
		}
		if !total.UtilizationPercent.IsZero() {
			t.Errorf("percent = %s, want 0 for zero budget", total.UtilizationPercent)
		}
	})
}
