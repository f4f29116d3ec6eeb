package dto

import (
	"github.com/simrs-budget/backend/internal/domain/entity"
)

// RealizationRowResponse represents one budget line in the realization
// report. Amounts are decimal strings; the frontend owns display formatting.
type RealizationRowResponse struct {
	FundCode           string `json:"fund_code"`
	BudgetCode         string `json:"budget_code"`
	JoinKey            string `json:"join_key"`
	Description        string `json:"description"`
	ProgramCode        string `json:"program_code"`
	ControllerCode     string `json:"controller_code"`
	ControllerName     string `json:"controller_name"`
	BudgetAmount       string `json:"budget_amount"`
	RealizedAmount     string `json:"realized_amount"`
	Remaining          string `json:"remaining"`
	UtilizationPercent string `json:"utilization_percent"`
	TransactionCount   int    `json:"transaction_count"`
}

// RealizationReportResponse represents the realization report for the active
// month selection.
type RealizationReportResponse struct {
	Rows   []RealizationRowResponse `json:"rows"`
	Months []string                 `json:"months"`
}

// RollupRowResponse represents one per-controller aggregate row.
type RollupRowResponse struct {
	ControllerName     string `json:"controller_name"`
	BudgetAmount       string `json:"budget_amount"`
	RealizedAmount     string `json:"realized_amount"`
	UtilizationPercent string `json:"utilization_percent"`
}

// RollupResponse represents the controller rollup including the TOTAL row.
type RollupResponse struct {
	Rows []RollupRowResponse `json:"rows"`
}

// RealizationDetailResponse represents the drill-down for one budget line.
type RealizationDetailResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	TotalAmount   string                `json:"total_amount"`
	DocumentCount int                   `json:"document_count"`
}

// ToRealizationRowResponse converts a domain realization row to its DTO.
func ToRealizationRowResponse(row *entity.RealizationRow) RealizationRowResponse {
	return RealizationRowResponse{
		FundCode:           row.FundCode,
		BudgetCode:         row.BudgetCode,
		JoinKey:            row.JoinKey,
		Description:        row.Description,
		ProgramCode:        row.ProgramCode,
		ControllerCode:     row.ControllerCode,
		ControllerName:     row.ControllerName,
		BudgetAmount:       row.BudgetAmount.StringFixed(2),
		RealizedAmount:     row.RealizedAmount.StringFixed(2),
		Remaining:          row.Remaining.StringFixed(2),
		UtilizationPercent: row.UtilizationPercent.StringFixed(2),
		TransactionCount:   row.TransactionCount,
	}
}

// ToRollupRowResponse converts a domain rollup row to its DTO.
func ToRollupRowResponse(row *entity.ControllerRollupRow) RollupRowResponse {
	return RollupRowResponse{
		ControllerName:     row.ControllerName,
		BudgetAmount:       row.BudgetAmount.StringFixed(2),
		RealizedAmount:     row.RealizedAmount.StringFixed(2),
		UtilizationPercent: row.UtilizationPercent.StringFixed(2),
	}
}
