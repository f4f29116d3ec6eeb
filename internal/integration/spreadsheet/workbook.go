// Package spreadsheet fetches and decodes the two xlsx exports the dashboard
// is built from.
package spreadsheet

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/simrs-budget/backend/internal/application/adapter"
	domainerror "github.com/simrs-budget/backend/internal/domain/error"
)

// DecodeWorkbook reads an xlsx stream and returns the rows of its first
// sheet. Cell values come back as the displayed strings; typing them is the
// ledger builders' job.
func DecodeWorkbook(r io.Reader) (adapter.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidWorkbook,
			"failed to open workbook",
			err,
		)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidWorkbook,
			"workbook has no sheets",
			domainerror.ErrSourceUnavailable,
		)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidWorkbook,
			"failed to read sheet "+sheets[0],
			err,
		)
	}

	return adapter.RawTable(rows), nil
}
