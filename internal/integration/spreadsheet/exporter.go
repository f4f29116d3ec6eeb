package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/simrs-budget/backend/internal/domain/entity"
)

// ExportRealizationReport encodes the realization report and the controller
// rollup as a two-sheet xlsx workbook. Column layout mirrors the dashboard
// tables.
func ExportRealizationReport(rows []*entity.RealizationRow, rollup []*entity.ControllerRollupRow) ([]byte, error) {
	reportHeader := []interface{}{
		"SUMBER DANA", "KODE MATA ANGGARAN", "URAIAN", "PENGENDALI",
		"PAGU", "REALISASI", "SISA", "%", "JUMLAH TRANSAKSI",
	}
	reportRecords := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		reportRecords = append(reportRecords, []interface{}{
			row.FundCode,
			row.BudgetCode,
			row.Description,
			row.ControllerName,
			row.BudgetAmount.InexactFloat64(),
			row.RealizedAmount.InexactFloat64(),
			row.Remaining.InexactFloat64(),
			row.UtilizationPercent.InexactFloat64(),
			row.TransactionCount,
		})
	}

	rollupHeader := []interface{}{"PENGENDALI", "PAGU", "REALISASI", "%"}
	rollupRecords := make([][]interface{}, 0, len(rollup))
	for _, row := range rollup {
		rollupRecords = append(rollupRecords, []interface{}{
			row.ControllerName,
			row.BudgetAmount.InexactFloat64(),
			row.RealizedAmount.InexactFloat64(),
			row.UtilizationPercent.InexactFloat64(),
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Realisasi_Anggaran"); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := fillSheet(f, "Realisasi_Anggaran", reportHeader, reportRecords); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Rekap_Pengendali"); err != nil {
		return nil, fmt.Errorf("failed to add rollup sheet: %w", err)
	}
	if err := fillSheet(f, "Rekap_Pengendali", rollupHeader, rollupRecords); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportTransactionReport encodes a filtered transaction report as an xlsx
// workbook.
func ExportTransactionReport(transactions []*entity.TransactionRecord) ([]byte, error) {
	header := []interface{}{
		"REKANAN", "TANGGAL", "NO BUKTI", "NAMA ITEM",
		"KODE MATA ANGGARAN", "PENGENDALI", "JUMLAH",
	}

	records := make([][]interface{}, 0, len(transactions))
	for _, txn := range transactions {
		date := ""
		if txn.Date != nil {
			date = txn.Date.Format("2006-01-02")
		}
		records = append(records, []interface{}{
			txn.Counterparty,
			date,
			txn.DocumentNumber,
			txn.BudgetItemName,
			txn.BudgetCode,
			txn.ControllerName,
			txn.Amount.InexactFloat64(),
		})
	}

	return encodeSheet("Transaksi", header, records)
}

func encodeSheet(name string, header []interface{}, records [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := fillSheet(f, name, header, records); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func fillSheet(f *excelize.File, name string, header []interface{}, records [][]interface{}) error {
	if err := setRow(f, name, 1, header); err != nil {
		return err
	}
	for i, record := range records {
		if err := setRow(f, name, i+2, record); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
