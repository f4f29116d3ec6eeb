package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProblemDocumentStatus represents the resolution state of a problem document.
type ProblemDocumentStatus string

const (
	ProblemDocumentPending  ProblemDocumentStatus = "PENDING"
	ProblemDocumentResolved ProblemDocumentStatus = "RESOLVED"
)

// Valid reports whether the status is part of the enumeration.
func (s ProblemDocumentStatus) Valid() bool {
	return s == ProblemDocumentPending || s == ProblemDocumentResolved
}

// ProblemDocument is one manually entered record in the problem-document log.
// The ID is generated at append time and carried as an explicit column in the
// persisted table, so edits and deletes address records by identifier rather
// than by row position.
type ProblemDocument struct {
	ID               uuid.UUID
	VerificationDate time.Time
	Company          string
	Note             string
	DocumentNumber   string
	Amount           decimal.Decimal
	IssueDescription string
	Status           ProblemDocumentStatus
	EntryDate        time.Time // set at creation, immutable
}

// NewProblemDocument creates a new ProblemDocument entity with a fresh ID and
// the entry date set to now.
func NewProblemDocument(
	verificationDate time.Time,
	company string,
	note string,
	documentNumber string,
	amount decimal.Decimal,
	issueDescription string,
	status ProblemDocumentStatus,
) *ProblemDocument {
	return &ProblemDocument{
		ID:               uuid.New(),
		VerificationDate: verificationDate,
		Company:          company,
		Note:             note,
		DocumentNumber:   documentNumber,
		Amount:           amount,
		IssueDescription: issueDescription,
		Status:           status,
		EntryDate:        time.Now().UTC(),
	}
}
