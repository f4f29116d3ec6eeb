package dto

import (
	"time"

	"github.com/simrs-budget/backend/internal/domain/entity"
)

// CreateProblemDocumentRequest represents the request body for a new problem
// document entry. Amount is a decimal string to avoid float rounding on the
// wire.
type CreateProblemDocumentRequest struct {
	VerificationDate string `json:"verification_date" binding:"required"` // YYYY-MM-DD
	Company          string `json:"company" binding:"required"`
	Note             string `json:"note"`
	DocumentNumber   string `json:"document_number" binding:"required"`
	Amount           string `json:"amount" binding:"required"`
	IssueDescription string `json:"issue_description" binding:"required"`
	Resolved         bool   `json:"resolved"`
}

// UpdateProblemDocumentStatusRequest represents a status transition request.
type UpdateProblemDocumentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ProblemDocumentResponse represents one problem document in API responses.
type ProblemDocumentResponse struct {
	ID               string    `json:"id"`
	VerificationDate string    `json:"verification_date"`
	Company          string    `json:"company"`
	Note             string    `json:"note"`
	DocumentNumber   string    `json:"document_number"`
	Amount           string    `json:"amount"`
	IssueDescription string    `json:"issue_description"`
	Status           string    `json:"status"`
	EntryDate        time.Time `json:"entry_date"`
}

// ProblemDocumentListResponse represents the filtered problem-document log.
type ProblemDocumentListResponse struct {
	Documents []ProblemDocumentResponse `json:"documents"`
}

// ToProblemDocumentResponse converts a domain problem document to its DTO.
func ToProblemDocumentResponse(doc *entity.ProblemDocument) ProblemDocumentResponse {
	return ProblemDocumentResponse{
		ID:               doc.ID.String(),
		VerificationDate: doc.VerificationDate.Format("2006-01-02"),
		Company:          doc.Company,
		Note:             doc.Note,
		DocumentNumber:   doc.DocumentNumber,
		Amount:           doc.Amount.StringFixed(2),
		IssueDescription: doc.IssueDescription,
		Status:           string(doc.Status),
		EntryDate:        doc.EntryDate,
	}
}
