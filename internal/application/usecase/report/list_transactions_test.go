package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/domain/entity"
)

func txn(docNumber, counterparty string, amount int64, date *time.Time) *entity.TransactionRecord {
	return &entity.TransactionRecord{
		Counterparty:   counterparty,
		Date:           date,
		DocumentNumber: docNumber,
		BudgetItemName: "BELANJA BARANG",
		Amount:         decimal.NewFromInt(amount),
		BudgetCode:     "051100.2.03",
		JoinKey:        "051100.2.03",
		ProgramCode:    "051100",
		ControllerCode: "2",
		ControllerName: "TIM KERJA ORGANISASI & SDM",
	}
}

func dateOf(s string) *time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestListTransactions(t *testing.T) {
	uc := NewListTransactionsUseCase()

	table := []*entity.TransactionRecord{
		txn("BKU-001", "PT MAJU JAYA", 300000, dateOf("2026-01-05 09:30:00")),
		txn("BKU-002", "CV SUMBER REZEKI", 0, dateOf("2026-01-10 14:00:00")),
		txn("BKU-003", "PT MAJU JAYA", 150000, dateOf("2026-02-20 23:59:59")),
		txn("BKU-004", "PT MAJU JAYA", 50000, nil),
	}

	t.Run("no criteria returns the whole table with totals", func(t *testing.T) {
		out := uc.Execute(table, ListTransactionsInput{})
		if len(out.Transactions) != 4 {
			t.Fatalf("len = %d, want 4", len(out.Transactions))
		}
		if !out.Totals.TotalAmount.Equal(decimal.NewFromInt(500000)) {
			t.Errorf("total = %s, want 500000", out.Totals.TotalAmount)
		}
		if out.Totals.DocumentCount != 3 {
			t.Errorf("document count = %d, want 3", out.Totals.DocumentCount)
		}
		if out.Totals.VoidedCount != 1 {
			t.Errorf("voided count = %d, want 1", out.Totals.VoidedCount)
		}
	})

	t.Run("criteria combine with AND", func(t *testing.T) {
		out := uc.Execute(table, ListTransactionsInput{
			Counterparties: []string{"PT MAJU JAYA"},
			Search:         "003",
		})
		if len(out.Transactions) != 1 {
			t.Fatalf("len = %d, want 1", len(out.Transactions))
		}
		if out.Transactions[0].DocumentNumber != "BKU-003" {
			t.Errorf("got %q", out.Transactions[0].DocumentNumber)
		}
	})

	t.Run("search matches the document number case-insensitively", func(t *testing.T) {
		out := uc.Execute(table, ListTransactionsInput{Search: "bku-001"})
		if len(out.Transactions) != 1 {
			t.Fatalf("len = %d, want 1", len(out.Transactions))
		}
	})

	t.Run("date range is inclusive at day precision", func(t *testing.T) {
		from := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
		to := from
		out := uc.Execute(table, ListTransactionsInput{StartDate: &from, EndDate: &to})
		if len(out.Transactions) != 1 {
			t.Fatalf("len = %d, want 1", len(out.Transactions))
		}
		if out.Transactions[0].DocumentNumber != "BKU-003" {
			t.Errorf("got %q", out.Transactions[0].DocumentNumber)
		}
	})

	t.Run("nil date fails any bounded range but passes the open one", func(t *testing.T) {
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		out := uc.Execute(table, ListTransactionsInput{StartDate: &from})
		for _, rec := range out.Transactions {
			if rec.Date == nil {
				t.Fatalf("record with nil date passed a bounded range")
			}
		}

		out = uc.Execute(table, ListTransactionsInput{})
		if len(out.Transactions) != 4 {
			t.Errorf("len = %d, want 4 with open range", len(out.Transactions))
		}
	})

	t.Run("output preserves table order", func(t *testing.T) {
		out := uc.Execute(table, ListTransactionsInput{Counterparties: []string{"PT MAJU JAYA"}})
		want := []string{"BKU-001", "BKU-003", "BKU-004"}
		if len(out.Transactions) != len(want) {
			t.Fatalf("len = %d, want %d", len(out.Transactions), len(want))
		}
		for i, doc := range want {
			if out.Transactions[i].DocumentNumber != doc {
				t.Errorf("row %d = %q, want %q", i, out.Transactions[i].DocumentNumber, doc)
			}
		}
	})
}

func TestRealizationDetail(t *testing.T) {
	uc := NewRealizationDetailUseCase()

	other := txn("BKU-009", "PT LAIN", 99999, dateOf("2026-01-02 08:00:00"))
	other.JoinKey = "052200.5.01"

	table := []*entity.TransactionRecord{
		txn("BKU-001", "PT MAJU JAYA", 300000, dateOf("2026-01-05 09:30:00")),
		other,
		txn("BKU-002", "CV SUMBER REZEKI", 0, dateOf("2026-01-10 14:00:00")),
		txn("BKU-003", "PT MAJU JAYA", 150000, dateOf("2026-02-20 23:59:59")),
	}

	t.Run("collects positive transactions for the join key", func(t *testing.T) {
		out := uc.Execute(table, "051100.2.03")
		if len(out.Transactions) != 2 {
			t.Fatalf("len = %d, want 2", len(out.Transactions))
		}
		if !out.TotalAmount.Equal(decimal.NewFromInt(450000)) {
			t.Errorf("total = %s, want 450000", out.TotalAmount)
		}
		if out.DocumentCount != 2 {
			t.Errorf("document count = %d, want 2", out.DocumentCount)
		}
	})

	t.Run("voided documents are excluded from the drill-down", func(t *testing.T) {
		out := uc.Execute(table, "051100.2.03")
		for _, rec := range out.Transactions {
			if rec.Amount.IsZero() {
				t.Fatalf("voided document %q included", rec.DocumentNumber)
			}
		}
	})

	t.Run("unknown key yields an empty detail", func(t *testing.T) {
		out := uc.Execute(table, "999999.9.99")
		if len(out.Transactions) != 0 || out.DocumentCount != 0 {
			t.Errorf("expected empty detail, got %d rows", len(out.Transactions))
		}
		if !out.TotalAmount.IsZero() {
			t.Errorf("total = %s, want 0", out.TotalAmount)
		}
	})
}
