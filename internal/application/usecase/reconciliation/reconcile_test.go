package reconciliation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/domain/entity"
)

func alloc(budgetCode, controllerName string, budget int64) *entity.AllocationLine {
	return &entity.AllocationLine{
		BudgetCode:     budgetCode,
		JoinKey:        budgetCode,
		ControllerName: controllerName,
		BudgetAmount:   decimal.NewFromInt(budget),
	}
}

func txn(joinKey string, amount int64, month string) *entity.TransactionRecord {
	rec := &entity.TransactionRecord{
		JoinKey:     joinKey,
		Amount:      decimal.NewFromInt(amount),
		MonthBucket: month,
	}
	if month != "" {
		if d, err := time.Parse("2006-01", month); err == nil {
			rec.Date = &d
		}
	}
	return rec
}

func TestReconcile(t *testing.T) {
	t.Run("aggregates realization per budget line", func(t *testing.T) {
		allocations := []*entity.AllocationLine{
			alloc("520111.1.001", "TIM KERJA PELAYANAN PENUNJANG", 1000000),
		}
		transactions := []*entity.TransactionRecord{
			txn("520111.1.001", 300000, "2026-01"),
			txn("520111.1.001", 0, "2026-01"), // voided document
		}

		report := Reconcile(allocations, transactions, nil)
		if len(report) != 1 {
			t.Fatalf("len(report) = %d, want 1", len(report))
		}

		row := report[0]
		if !row.RealizedAmount.Equal(decimal.NewFromInt(300000)) {
			t.Errorf("RealizedAmount = %s, want 300000", row.RealizedAmount)
		}
		if row.TransactionCount != 1 {
			t.Errorf("TransactionCount = %d, want 1 (voided documents do not count)", row.TransactionCount)
		}
		if !row.Remaining.Equal(decimal.NewFromInt(700000)) {
			t.Errorf("Remaining = %s, want 700000", row.Remaining)
		}
		if row.UtilizationPercent.StringFixed(2) != "30.00" {
			t.Errorf("UtilizationPercent = %s, want 30.00", row.UtilizationPercent.StringFixed(2))
		}
	})

	t.Run("left join is total over allocations", func(t *testing.T) {
		allocations := []*entity.AllocationLine{
			alloc("520111.1.001", "A", 100),
			alloc("520111.2.001", "B", 200),
			alloc("520111.3.001", "C", 300),
		}
		transactions := []*entity.TransactionRecord{
			txn("520111.2.001", 50, "2026-01"),
		}

		report := Reconcile(allocations, transactions, nil)
		if len(report) != len(allocations) {
			t.Fatalf("len(report) = %d, want %d", len(report), len(allocations))
		}

		if !report[0].RealizedAmount.IsZero() || report[0].TransactionCount != 0 {
			t.Error("unmatched line should carry zero realization")
		}
		if !report[0].Remaining.Equal(report[0].BudgetAmount) {
			t.Error("unmatched line should keep its full budget remaining")
		}
	})

	t.Run("month filter narrows the aggregates", func(t *testing.T) {
		allocations := []*entity.AllocationLine{alloc("520111.1.001", "A", 1000)}
		transactions := []*entity.TransactionRecord{
			txn("520111.1.001", 100, "2026-01"),
			txn("520111.1.001", 200, "2026-02"),
		}

		report := Reconcile(allocations, transactions, []string{"2026-02"})
		if !report[0].RealizedAmount.Equal(decimal.NewFromInt(200)) {
			t.Errorf("RealizedAmount = %s, want 200", report[0].RealizedAmount)
		}

		all := Reconcile(allocations, transactions, nil)
		if !all[0].RealizedAmount.Equal(decimal.NewFromInt(300)) {
			t.Errorf("unfiltered RealizedAmount = %s, want 300", all[0].RealizedAmount)
		}
	})

	t.Run("duplicate budget codes fan out the same aggregate", func(t *testing.T) {
		allocations := []*entity.AllocationLine{
			alloc("520111.1.001", "A", 500),
			alloc("520111.1.001", "A", 600),
		}
		transactions := []*entity.TransactionRecord{
			txn("520111.1.001", 150, "2026-01"),
		}

		report := Reconcile(allocations, transactions, nil)
		if len(report) != 2 {
			t.Fatalf("len(report) = %d, want 2", len(report))
		}
		for i, row := range report {
			if !row.RealizedAmount.Equal(decimal.NewFromInt(150)) {
				t.Errorf("row %d RealizedAmount = %s, want 150 (not split)", i, row.RealizedAmount)
			}
		}
	})

	t.Run("zero budget yields zero utilization", func(t *testing.T) {
		allocations := []*entity.AllocationLine{alloc("520111.1.001", "A", 0)}
		transactions := []*entity.TransactionRecord{
			txn("520111.1.001", 100, "2026-01"),
		}

		report := Reconcile(allocations, transactions, nil)
		if !report[0].UtilizationPercent.IsZero() {
			t.Errorf("UtilizationPercent = %s, want 0", report[0].UtilizationPercent)
		}
	})

	t.Run("pure function: identical inputs give identical output", func(t *testing.T) {
		allocations := []*entity.AllocationLine{
			alloc("520111.1.001", "A", 1000),
			alloc("520111.2.001", "B", 2000),
		}
		transactions := []*entity.TransactionRecord{
			txn("520111.1.001", 100, "2026-01"),
			txn("520111.2.001", 200, "2026-02"),
		}

		first := Reconcile(allocations, transactions, nil)
		second := Reconcile(allocations, transactions, nil)
		if len(first) != len(second) {
			t.Fatal("row counts differ between runs")
		}
		for i := range first {
			if !first[i].RealizedAmount.Equal(second[i].RealizedAmount) ||
				first[i].TransactionCount != second[i].TransactionCount ||
				!first[i].UtilizationPercent.Equal(second[i].UtilizationPercent) {
				t.Errorf("row %d differs between runs", i)
			}
		}
	})
}
