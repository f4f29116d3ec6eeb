// Package ledger contains the builders that turn raw spreadsheet rows into
// normalized entity tables.
package ledger

import (
	"strings"

	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/domain/entity"
	"github.com/simrs-budget/backend/internal/domain/valueobject"
)

// Column positions in the allocation export, fixed by contract with the
// spreadsheet source (0-indexed).
const (
	allocColFundCode     = 2
	allocColBudgetCode   = 3
	allocColDescription  = 5
	allocColBudgetAmount = 7
)

// BuildAllocations transforms raw allocation rows into AllocationLine entities.
// The first row is a header and skipped. Rows whose budget code does not match
// the composite pattern, or whose controller code is not in the enumeration,
// cannot be attributed to a reporting unit and are dropped; the count of
// dropped rows is returned so data quality stays observable. A malformed
// numeric cell aborts the whole build.
func BuildAllocations(rows adapter.RawTable, controllers valueobject.ControllerMap) ([]*entity.AllocationLine, int, error) {
	var lines []*entity.AllocationLine
	dropped := 0

	for i, row := range rows {
		if i == 0 {
			continue
		}

		budgetCode := cell(row, allocColBudgetCode)
		programCode, controllerCode, ok := valueobject.ParseBudgetCode(budgetCode)
		if !ok {
			dropped++
			continue
		}
		controllerName, ok := controllers.Resolve(controllerCode)
		if !ok {
			dropped++
			continue
		}

		amount, err := valueobject.ParseLocaleNumber(cell(row, allocColBudgetAmount))
		if err != nil {
			return nil, 0, err
		}

		lines = append(lines, &entity.AllocationLine{
			FundCode:       cell(row, allocColFundCode),
			BudgetCode:     budgetCode,
			Description:    cell(row, allocColDescription),
			BudgetAmount:   amount,
			ProgramCode:    programCode,
			ControllerCode: controllerCode,
			ControllerName: controllerName,
			JoinKey:        strings.TrimSpace(budgetCode),
		})
	}

	return lines, dropped, nil
}

// cell returns the value at a column position, tolerating short rows.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
