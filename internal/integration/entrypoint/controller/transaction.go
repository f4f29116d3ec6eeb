package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simrs-budget/backend/internal/application/usecase/dataset"
	"github.com/simrs-budget/backend/internal/application/usecase/report"
	"github.com/simrs-budget/backend/internal/integration/entrypoint/dto"
	"github.com/simrs-budget/backend/internal/integration/spreadsheet"
)

const queryDateLayout = "2006-01-02"

// TransactionController handles the SIMRS transaction report endpoints.
type TransactionController struct {
	holder      *dataset.Holder
	listUseCase *report.ListTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	holder *dataset.Holder,
	listUseCase *report.ListTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		holder:      holder,
		listUseCase: listUseCase,
	}
}

// List handles GET /transactions requests. Multi-value criteria are repeated
// query parameters; all criteria combine with AND.
func (c *TransactionController) List(ctx *gin.Context) {
	ds, err := c.holder.Current()
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	input, ok := c.bindFilter(ctx)
	if !ok {
		return
	}

	output := c.listUseCase.Execute(ds.Transactions, input)

	ctx.JSON(http.StatusOK, dto.TransactionReportResponse{
		Transactions: dto.ToTransactionResponses(output.Transactions),
		Totals: dto.TransactionTotalsResponse{
			TotalAmount:   output.Totals.TotalAmount.StringFixed(2),
			DocumentCount: output.Totals.DocumentCount,
			VoidedCount:   output.Totals.VoidedCount,
		},
	})
}

// Export handles GET /transactions/export requests, returning the filtered
// report as an xlsx attachment.
func (c *TransactionController) Export(ctx *gin.Context) {
	ds, err := c.holder.Current()
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	input, ok := c.bindFilter(ctx)
	if !ok {
		return
	}

	output := c.listUseCase.Execute(ds.Transactions, input)

	data, err := spreadsheet.ExportTransactionReport(output.Transactions)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to encode export",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="transaksi-simrs.xlsx"`)
	ctx.Data(http.StatusOK, xlsxContentType, data)
}

func (c *TransactionController) bindFilter(ctx *gin.Context) (report.ListTransactionsInput, bool) {
	input := report.ListTransactionsInput{
		Counterparties:  ctx.QueryArray("counterparty"),
		BudgetItemNames: ctx.QueryArray("item"),
		ControllerNames: ctx.QueryArray("controller"),
		ProgramCodes:    ctx.QueryArray("program"),
		Search:          ctx.Query("search"),
	}

	for _, bound := range []struct {
		param  string
		target **time.Time
	}{
		{"start_date", &input.StartDate},
		{"end_date", &input.EndDate},
	} {
		raw := ctx.Query(bound.param)
		if raw == "" {
			continue
		}
		t, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: bound.param + " must be formatted as YYYY-MM-DD",
			})
			return report.ListTransactionsInput{}, false
		}
		*bound.target = &t
	}

	return input, true
}
