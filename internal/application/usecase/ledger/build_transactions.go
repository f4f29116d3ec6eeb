package ledger

import (
	"strings"
	"time"

	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/domain/entity"
	"github.com/simrs-budget/backend/internal/domain/valueobject"
)

// Column positions in the SIMRS transaction export, fixed by contract with the
// spreadsheet source (0-indexed).
const (
	txnColCounterparty   = 0
	txnColDate           = 1
	txnColDocumentNumber = 2
	txnColBudgetItemName = 3
	txnColCodeText       = 5
	txnColAmount         = 8
)

// Date layouts seen in SIMRS exports. Cells that match none of them yield a
// nil date and an empty month bucket rather than an error.
var txnDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"01-02-06",
	"2/1/2006",
}

// BuildTransactions transforms raw SIMRS rows into TransactionRecord entities.
// The first row is a header and skipped. Rows with no extractable budget code
// cannot be attributed to any allocation line and are dropped; the dropped
// count is returned. An unmapped controller code does not drop the row: the
// record still belongs in the transaction report, it just carries no unit name.
// A malformed numeric cell aborts the whole build.
func BuildTransactions(rows adapter.RawTable, controllers valueobject.ControllerMap) ([]*entity.TransactionRecord, int, error) {
	var records []*entity.TransactionRecord
	dropped := 0

	for i, row := range rows {
		if i == 0 {
			continue
		}

		budgetCode, ok := valueobject.ExtractBudgetCode(cell(row, txnColCodeText))
		if !ok {
			dropped++
			continue
		}

		amount, err := valueobject.ParseLocaleNumber(cell(row, txnColAmount))
		if err != nil {
			return nil, 0, err
		}

		record := &entity.TransactionRecord{
			Counterparty:   cell(row, txnColCounterparty),
			Date:           parseTxnDate(cell(row, txnColDate)),
			DocumentNumber: cell(row, txnColDocumentNumber),
			BudgetItemName: cell(row, txnColBudgetItemName),
			Amount:         amount,
			BudgetCode:     budgetCode,
			JoinKey:        strings.TrimSpace(budgetCode),
		}
		if record.Date != nil {
			record.MonthBucket = entity.MonthBucketOf(*record.Date)
		}

		if programCode, controllerCode, ok := valueobject.ParseBudgetCode(budgetCode); ok {
			record.ProgramCode = programCode
			record.ControllerCode = controllerCode
			if name, ok := controllers.Resolve(controllerCode); ok {
				record.ControllerName = name
			}
		}

		records = append(records, record)
	}

	return records, dropped, nil
}

func parseTxnDate(s string) *time.Time {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	for _, layout := range txnDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return &t
		}
	}
	return nil
}
