package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/application/usecase/problemdoc"
	"github.com/simrs-budget/backend/internal/domain/entity"
	domainerror "github.com/simrs-budget/backend/internal/domain/error"
	"github.com/simrs-budget/backend/internal/integration/entrypoint/dto"
)

// ProblemDocumentController handles the problem-document log endpoints.
type ProblemDocumentController struct {
	createUseCase *problemdoc.CreateProblemDocumentUseCase
	updateUseCase *problemdoc.UpdateStatusUseCase
	deleteUseCase *problemdoc.DeleteProblemDocumentUseCase
	listUseCase   *problemdoc.ListProblemDocumentsUseCase
}

// NewProblemDocumentController creates a new problem document controller instance.
func NewProblemDocumentController(
	createUseCase *problemdoc.CreateProblemDocumentUseCase,
	updateUseCase *problemdoc.UpdateStatusUseCase,
	deleteUseCase *problemdoc.DeleteProblemDocumentUseCase,
	listUseCase *problemdoc.ListProblemDocumentsUseCase,
) *ProblemDocumentController {
	return &ProblemDocumentController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /problem-documents requests.
func (c *ProblemDocumentController) Create(ctx *gin.Context) {
	var req dto.CreateProblemDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRequiredField),
		})
		return
	}

	verificationDate, err := time.Parse(queryDateLayout, req.VerificationDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "verification_date must be formatted as YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingRequiredField),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "amount must be a decimal number",
			Code:  string(domainerror.ErrCodeNegativeAmount),
		})
		return
	}

	input := problemdoc.CreateProblemDocumentInput{
		VerificationDate: verificationDate,
		Company:          req.Company,
		Note:             req.Note,
		DocumentNumber:   req.DocumentNumber,
		Amount:           amount,
		IssueDescription: req.IssueDescription,
		Resolved:         req.Resolved,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProblemDocumentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProblemDocumentResponse(output.Document))
}

// List handles GET /problem-documents requests.
func (c *ProblemDocumentController) List(ctx *gin.Context) {
	input := problemdoc.ListProblemDocumentsInput{
		Companies:              ctx.QueryArray("company"),
		DocumentNumberContains: ctx.Query("search"),
	}
	for _, status := range ctx.QueryArray("status") {
		input.Statuses = append(input.Statuses, entity.ProblemDocumentStatus(status))
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
			return
		}
		*bound.target = &t
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProblemDocumentError(ctx, err)
		return
	}

	response := dto.ProblemDocumentListResponse{
		Documents: make([]dto.ProblemDocumentResponse, 0, len(output.Documents)),
	}
	for _, doc := range output.Documents {
		response.Documents = append(response.Documents, dto.ToProblemDocumentResponse(doc))
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateStatus handles PATCH /problem-documents/:id/status requests.
func (c *ProblemDocumentController) UpdateStatus(ctx *gin.Context) {
	id, ok := c.bindID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProblemDocumentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidStatus),
		})
		return
	}

	input := problemdoc.UpdateStatusInput{
		ID:     id,
		Status: entity.ProblemDocumentStatus(req.Status),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProblemDocumentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProblemDocumentResponse(output.Document))
}

// Delete handles DELETE /problem-documents/:id requests.
func (c *ProblemDocumentController) Delete(ctx *gin.Context) {
	id, ok := c.bindID(ctx)
	if !ok {
		return
	}

	input := problemdoc.DeleteProblemDocumentInput{ID: id}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleProblemDocumentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Problem document deleted",
	})
}

func (c *ProblemDocumentController) bindID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "id must be a valid UUID",
			Code:  string(domainerror.ErrCodeProblemDocumentNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleProblemDocumentError handles problem-document errors and returns
// appropriate HTTP responses.
func (c *ProblemDocumentController) handleProblemDocumentError(ctx *gin.Context, err error) {
	var docErr *domainerror.ProblemDocumentError
	if errors.As(err, &docErr) {
		ctx.JSON(statusCodeForProblemDocumentError(docErr.Code), dto.ErrorResponse{
			Error: docErr.Message,
			Code:  string(docErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForProblemDocumentError maps problem-document error codes to HTTP
// status codes.
func statusCodeForProblemDocumentError(code domainerror.ProblemDocumentErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingRequiredField,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeInvalidStatus:
		return http.StatusBadRequest
	case domainerror.ErrCodeProblemDocumentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeConcurrentModification:
		return http.StatusConflict
	case domainerror.ErrCodeStoreUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
