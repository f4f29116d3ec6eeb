package controller

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/application/usecase/dataset"
	"github.com/simrs-budget/backend/internal/integration/entrypoint/dto"
	"github.com/simrs-budget/backend/internal/integration/spreadsheet"
)

// DatasetController handles the snapshot lifecycle endpoints.
type DatasetController struct {
	holder        *dataset.Holder
	loadUseCase   *dataset.LoadDatasetUseCase
	uploadUseCase *dataset.UploadDatasetUseCase
}

// NewDatasetController creates a new dataset controller instance.
func NewDatasetController(
	holder *dataset.Holder,
	loadUseCase *dataset.LoadDatasetUseCase,
	uploadUseCase *dataset.UploadDatasetUseCase,
) *DatasetController {
	return &DatasetController{
		holder:        holder,
		loadUseCase:   loadUseCase,
		uploadUseCase: uploadUseCase,
	}
}

// Status handles GET /dataset requests.
func (c *DatasetController) Status(ctx *gin.Context) {
	ds, err := c.holder.Current()
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDatasetStatusResponse(ds))
}

// Reload handles POST /dataset/reload requests. "force=true" bypasses the
// snapshot cache and refetches both exports.
func (c *DatasetController) Reload(ctx *gin.Context) {
	input := dataset.LoadDatasetInput{
		Force: ctx.Query("force") == "true",
	}

	output, err := c.loadUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDatasetStatusResponse(output.Dataset))
}

// Upload handles POST /dataset/upload requests. The request is a multipart
// form with an "allocations" and a "transactions" xlsx file; the uploaded
// data replaces the snapshot until the next drive reload.
func (c *DatasetController) Upload(ctx *gin.Context) {
	allocRows, ok := c.decodeUpload(ctx, "allocations")
	if !ok {
		return
	}
	txnRows, ok := c.decodeUpload(ctx, "transactions")
	if !ok {
		return
	}

	input := dataset.UploadDatasetInput{
		AllocationRows:  allocRows,
		TransactionRows: txnRows,
	}

	output, err := c.uploadUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDatasetStatusResponse(output.Dataset))
}

func (c *DatasetController) decodeUpload(ctx *gin.Context, field string) (adapter.RawTable, bool) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: field + " file is required",
		})
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "failed to open " + field + " file",
		})
		return nil, false
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	table, err := spreadsheet.DecodeWorkbook(file)
	if err != nil {
		handleLedgerError(ctx, err)
		return nil, false
	}
	return table, true
}
