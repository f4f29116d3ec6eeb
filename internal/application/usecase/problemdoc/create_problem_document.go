// Package problemdoc contains the problem-document ledger use cases. Every
// mutation reads the full table from the store, derives the new full table and
// writes it back under the version token; the backing store only supports
// whole-table overwrite.
package problemdoc

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/domain/entity"
	domainerror "github.com/simrs-budget/backend/internal/domain/error"
)

// CreateProblemDocumentInput represents a new manual entry.
type CreateProblemDocumentInput struct {
	VerificationDate time.Time
	Company          string
	Note             string
	DocumentNumber   string
	Amount           decimal.Decimal
	IssueDescription string
	Resolved         bool // entries default to PENDING unless marked resolved at entry time
}

// CreateProblemDocumentOutput represents the result of appending an entry.
type CreateProblemDocumentOutput struct {
	Document *entity.ProblemDocument
}

// CreateProblemDocumentUseCase validates and appends a problem document.
type CreateProblemDocumentUseCase struct {
	store adapter.ProblemDocumentStore
}

// NewCreateProblemDocumentUseCase creates a new CreateProblemDocumentUseCase instance.
func NewCreateProblemDocumentUseCase(store adapter.ProblemDocumentStore) *CreateProblemDocumentUseCase {
	return &CreateProblemDocumentUseCase{store: store}
}

// Execute validates the entry, appends it at the end of the table and
// persists the new full table. On any failure the persisted table is left
// unchanged.
func (uc *CreateProblemDocumentUseCase) Execute(ctx context.Context, input CreateProblemDocumentInput) (*CreateProblemDocumentOutput, error) {
	if err := validateEntry(input); err != nil {
		return nil, err
	}

	docs, version, err := uc.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	status := entity.ProblemDocumentPending
	if input.Resolved {
		status = entity.ProblemDocumentResolved
	}

	doc := entity.NewProblemDocument(
		input.VerificationDate,
		strings.TrimSpace(input.Company),
		input.Note,
		strings.TrimSpace(input.DocumentNumber),
		input.Amount,
		strings.TrimSpace(input.IssueDescription),
		status,
	)

	if err := uc.store.OverwriteAll(ctx, append(docs, doc), version); err != nil {
		return nil, err
	}

	return &CreateProblemDocumentOutput{Document: doc}, nil
}

// validateEntry enforces the required-field and amount rules shared with the
// HTTP layer's error mapping.
func validateEntry(input CreateProblemDocumentInput) error {
	missing := func(field string) error {
		return domainerror.NewProblemDocumentError(
			domainerror.ErrCodeMissingRequiredField,
			field+" is required",
			domainerror.ErrMissingRequiredField,
		)
	}

	if strings.TrimSpace(input.Company) == "" {
		return missing("company")
	}
	if strings.TrimSpace(input.DocumentNumber) == "" {
		return missing("document number")
	}
	if strings.TrimSpace(input.IssueDescription) == "" {
		return missing("issue description")
	}
	if input.Amount.IsNegative() {
		return domainerror.NewProblemDocumentError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	return nil
}
