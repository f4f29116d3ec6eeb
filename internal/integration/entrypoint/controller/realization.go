package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simrs-budget/backend/internal/application/usecase/dataset"
	"github.com/simrs-budget/backend/internal/application/usecase/reconciliation"
	"github.com/simrs-budget/backend/internal/application/usecase/report"
	"github.com/simrs-budget/backend/internal/domain/entity"
	domainerror "github.com/simrs-budget/backend/internal/domain/error"
	"github.com/simrs-budget/backend/internal/integration/entrypoint/dto"
	"github.com/simrs-budget/backend/internal/integration/spreadsheet"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RealizationController handles the realization report endpoints.
type RealizationController struct {
	holder        *dataset.Holder
	detailUseCase *report.RealizationDetailUseCase
}

// NewRealizationController creates a new realization controller instance.
func NewRealizationController(
	holder *dataset.Holder,
	detailUseCase *report.RealizationDetailUseCase,
) *RealizationController {
	return &RealizationController{
		holder:        holder,
		detailUseCase: detailUseCase,
	}
}

// Report handles GET /realization requests. Months and controller names are
// passed as repeated "month" ("YYYY-MM") and "controller" query parameters;
// none means no filtering on that axis.
func (c *RealizationController) Report(ctx *gin.Context) {
	ds, err := c.holder.Current()
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	rows := filterByController(
		reconciliation.Reconcile(ds.Allocations, ds.Transactions, ctx.QueryArray("month")),
		ctx.QueryArray("controller"),
	)

	response := dto.RealizationReportResponse{
		Rows:   make([]dto.RealizationRowResponse, 0, len(rows)),
		Months: ds.Months(),
	}
	for _, row := range rows {
		response.Rows = append(response.Rows, dto.ToRealizationRowResponse(row))
	}

	ctx.JSON(http.StatusOK, response)
}

// Rollup handles GET /realization/rollup requests.
func (c *RealizationController) Rollup(ctx *gin.Context) {
	ds, err := c.holder.Current()
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	rows := reconciliation.Rollup(filterByController(
		reconciliation.Reconcile(ds.Allocations, ds.Transactions, ctx.QueryArray("month")),
		ctx.QueryArray("controller"),
	))

	response := dto.RollupResponse{Rows: make([]dto.RollupRowResponse, 0, len(rows))}
	for _, row := range rows {
		response.Rows = append(response.Rows, dto.ToRollupRowResponse(row))
	}

	ctx.JSON(http.StatusOK, response)
}

// Detail handles GET /realization/detail requests. The budget line is
// identified by its join key in the "key" query parameter.
func (c *RealizationController) Detail(ctx *gin.Context) {
	key := ctx.Query("key")
	if key == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "key query parameter is required",
		})
		return
	}

	ds, err := c.holder.Current()
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	output := c.detailUseCase.Execute(ds.Transactions, key)

	ctx.JSON(http.StatusOK, dto.RealizationDetailResponse{
		Transactions:  dto.ToTransactionResponses(output.Transactions),
		TotalAmount:   output.TotalAmount.StringFixed(2),
		DocumentCount: output.DocumentCount,
	})
}

// Export handles GET /realization/export requests, returning the report as
// an xlsx attachment.
func (c *RealizationController) Export(ctx *gin.Context) {
	ds, err := c.holder.Current()
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	rows := filterByController(
		reconciliation.Reconcile(ds.Allocations, ds.Transactions, ctx.QueryArray("month")),
		ctx.QueryArray("controller"),
	)

	data, err := spreadsheet.ExportRealizationReport(rows, reconciliation.Rollup(rows))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to encode export",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="realisasi-anggaran.xlsx"`)
	ctx.Data(http.StatusOK, xlsxContentType, data)
}

// filterByController keeps only rows whose controller name is in the
// selection; an empty selection passes everything.
func filterByController(rows []*entity.RealizationRow, names []string) []*entity.RealizationRow {
	if len(names) == 0 {
		return rows
	}
	want := make(map[string]struct{}, len(names))
	for _, name := range names {
		want[name] = struct{}{}
	}
	filtered := make([]*entity.RealizationRow, 0, len(rows))
	for _, row := range rows {
		if _, ok := want[row.ControllerName]; ok {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// handleLedgerError maps ledger/dataset errors to HTTP responses. It is
// shared by every controller that reads the snapshot.
func handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForLedgerError maps ledger error codes to HTTP status codes.
func statusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeDatasetNotLoaded:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeSourceUnavailable:
		return http.StatusBadGateway
	case domainerror.ErrCodeUnknownSource,
		domainerror.ErrCodeInvalidWorkbook,
		domainerror.ErrCodeInvalidNumberFormat:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
