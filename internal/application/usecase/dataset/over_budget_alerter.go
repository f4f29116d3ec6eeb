package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/application/usecase/reconciliation"
	"github.com/simrs-budget/backend/internal/domain/entity"
)

// OverBudgetAlerter emails the budget team when a load cycle finds allocation
// lines whose realization meets or exceeds the threshold. Alert failures are
// logged and never fail the load cycle.
type OverBudgetAlerter struct {
	sender     adapter.EmailSender
	recipients []string
	threshold  decimal.Decimal // utilization percent, e.g. 100
}

// NewOverBudgetAlerter creates a new OverBudgetAlerter instance.
func NewOverBudgetAlerter(sender adapter.EmailSender, recipients []string, threshold decimal.Decimal) *OverBudgetAlerter {
	return &OverBudgetAlerter{
		sender:     sender,
		recipients: recipients,
		threshold:  threshold,
	}
}

// Notify reconciles the full dataset (all months) and sends one digest email
// listing every line at or over the threshold.
func (a *OverBudgetAlerter) Notify(ctx context.Context, ds *entity.Dataset) {
	report := reconciliation.Reconcile(ds.Allocations, ds.Transactions, nil)

	var over []*entity.RealizationRow
	for _, row := range report {
		if !row.BudgetAmount.IsZero() && row.UtilizationPercent.GreaterThanOrEqual(a.threshold) {
			over = append(over, row)
		}
	}
	if len(over) == 0 {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d budget lines at or over %s%% utilization:\n\n", len(over), a.threshold.StringFixed(0))
	for _, row := range over {
		fmt.Fprintf(&b, "%s  %s  budget %s  realized %s (%s%%)\n",
			row.BudgetCode,
			row.Description,
			row.BudgetAmount.StringFixed(0),
			row.RealizedAmount.StringFixed(0),
			row.UtilizationPercent.StringFixed(2),
		)
	}

	subject := fmt.Sprintf("Realisasi anggaran: %d mata anggaran melebihi pagu", len(over))
	for _, to := range a.recipients {
		_, err := a.sender.Send(ctx, adapter.SendEmailInput{
			To:      to,
			Subject: subject,
			Text:    b.String(),
		})
		if err != nil {
			slog.Warn("Over-budget alert failed", "recipient", to, "error", err)
		}
	}
}
