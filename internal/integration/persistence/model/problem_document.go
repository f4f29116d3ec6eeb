// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/domain/entity"
)

// ProblemDocumentModel represents the problem_documents table. Position keeps
// the table's insertion order across the overwrite cycles; it is purely a
// sort key and never exposed as an identifier.
type ProblemDocumentModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position         int             `gorm:"index;not null"`
	VerificationDate time.Time       `gorm:"not null"`
	Company          string          `gorm:"type:varchar(255);not null"`
	Note             string          `gorm:"type:text"`
	DocumentNumber   string          `gorm:"type:varchar(100);not null"`
	Amount           decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	IssueDescription string          `gorm:"type:text;not null"`
	Status           string          `gorm:"type:varchar(20);not null"`
	EntryDate        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProblemDocumentModel.
func (ProblemDocumentModel) TableName() string {
	return "problem_documents"
}

// ToEntity converts a ProblemDocumentModel to a domain ProblemDocument entity.
func (m *ProblemDocumentModel) ToEntity() *entity.ProblemDocument {
	return &entity.ProblemDocument{
		ID:               m.ID,
		VerificationDate: m.VerificationDate,
		Company:          m.Company,
		Note:             m.Note,
		DocumentNumber:   m.DocumentNumber,
		Amount:           m.Amount,
		IssueDescription: m.IssueDescription,
		Status:           entity.ProblemDocumentStatus(m.Status),
		EntryDate:        m.EntryDate,
	}
}

// FromEntity creates a ProblemDocumentModel from a domain ProblemDocument
// entity at the given table position.
func FromEntity(doc *entity.ProblemDocument, position int) *ProblemDocumentModel {
	return &ProblemDocumentModel{
		ID:               doc.ID,
		Position:         position,
		VerificationDate: doc.VerificationDate,
		Company:          doc.Company,
		Note:             doc.Note,
		DocumentNumber:   doc.DocumentNumber,
		Amount:           doc.Amount,
		IssueDescription: doc.IssueDescription,
		Status:           string(doc.Status),
		EntryDate:        doc.EntryDate,
	}
}

// ProblemDocumentVersionModel is the single-row table carrying the version
// token for the optimistic overwrite check.
type ProblemDocumentVersionModel struct {
	ID        int       `gorm:"primaryKey"`
	Version   int64     `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProblemDocumentVersionModel.
func (ProblemDocumentVersionModel) TableName() string {
	return "problem_document_versions"
}
