package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/application/adapter"
	domainerror "github.com/simrs-budget/backend/internal/domain/error"
	"github.com/simrs-budget/backend/internal/domain/valueobject"
)

// allocRow builds a raw row with the allocation column layout: col 2 fund
// code, col 3 budget code, col 5 description, col 7 amount.
func allocRow(fundCode, budgetCode, description, amount string) []string {
	return []string{"", "", fundCode, budgetCode, "", description, "", amount}
}

var allocHeader = allocRow("KODE DANA", "KODE MA", "URAIAN", "PAGU")

func TestBuildAllocations(t *testing.T) {
	controllers := valueobject.DefaultControllerMap()

	t.Run("builds normalized lines with derived fields", func(t *testing.T) {
		rows := adapter.RawTable{
			allocHeader,
			allocRow("BLUD", "520111.5.001 ", "Belanja ATK", "1.500.000"),
		}

		lines, dropped, err := BuildAllocations(rows, controllers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dropped != 0 {
			t.Errorf("dropped = %d, want 0", dropped)
		}
		if len(lines) != 1 {
			t.Fatalf("len(lines) = %d, want 1", len(lines))
		}

		line := lines[0]
		if line.FundCode != "BLUD" {
			t.Errorf("FundCode = %q", line.FundCode)
		}
		if line.ProgramCode != "520111" {
			t.Errorf("ProgramCode = %q, want 520111", line.ProgramCode)
		}
		if line.ControllerCode != "5" {
			t.Errorf("ControllerCode = %q, want 5", line.ControllerCode)
		}
		if line.ControllerName != "INSTALASI SIM RS" {
			t.Errorf("ControllerName = %q", line.ControllerName)
		}
		if line.JoinKey != "520111.5.001" {
			t.Errorf("JoinKey = %q, want trimmed budget code", line.JoinKey)
		}
		if !line.BudgetAmount.Equal(decimal.NewFromInt(1500000)) {
			t.Errorf("BudgetAmount = %s, want 1500000", line.BudgetAmount)
		}
	})

	t.Run("drops unattributable rows and counts them", func(t *testing.T) {
		rows := adapter.RawTable{
			allocHeader,
			allocRow("BLUD", "JUMLAH", "housekeeping subtotal", "-"),
			allocRow("BLUD", "520111.9.001", "unmapped controller", "100"),
			allocRow("BLUD", "520111.1.001", "valid line", "200"),
		}

		lines, dropped, err := BuildAllocations(rows, controllers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 1 {
			t.Fatalf("len(lines) = %d, want 1", len(lines))
		}
		if dropped != 2 {
			t.Errorf("dropped = %d, want 2", dropped)
		}
	})

	t.Run("dash amount parses as zero", func(t *testing.T) {
		rows := adapter.RawTable{
			allocHeader,
			allocRow("BLUD", "520111.1.001", "no budget yet", "-"),
		}

		lines, _, err := BuildAllocations(rows, controllers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !lines[0].BudgetAmount.IsZero() {
			t.Errorf("BudgetAmount = %s, want 0", lines[0].BudgetAmount)
		}
	})

	t.Run("malformed amount aborts the build", func(t *testing.T) {
		rows := adapter.RawTable{
			allocHeader,
			allocRow("BLUD", "520111.1.001", "bad cell", "n/a"),
		}

		_, _, err := BuildAllocations(rows, controllers)
		if !errors.Is(err, domainerror.ErrInvalidNumberFormat) {
			t.Fatalf("err = %v, want ErrInvalidNumberFormat", err)
		}
	})

	t.Run("preserves input order", func(t *testing.T) {
		rows := adapter.RawTable{
			allocHeader,
			allocRow("BLUD", "520111.2.003", "second unit", "1"),
			allocRow("BLUD", "520111.1.001", "first unit", "2"),
		}

		lines, _, err := BuildAllocations(rows, controllers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lines[0].BudgetCode != "520111.2.003" || lines[1].BudgetCode != "520111.1.001" {
			t.Error("output not in input order")
		}
	})

	t.Run("tolerates short rows", func(t *testing.T) {
		rows := adapter.RawTable{
			allocHeader,
			{"", ""},
		}

		lines, dropped, err := BuildAllocations(rows, controllers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 0 || dropped != 1 {
			t.Errorf("got %d lines, %d dropped; want 0 lines, 1 dropped", len(lines), dropped)
		}
	})
}
