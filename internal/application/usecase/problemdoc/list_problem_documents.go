package problemdoc

import (
	"context"
	"strings"
	"time"

	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/domain/entity"
)

// ListProblemDocumentsInput represents the filter criteria for the log view.
// Criteria are conjunctive; omitted criteria pass everything.
type ListProblemDocumentsInput struct {
	StartDate              *time.Time // inclusive, on verification date
	EndDate                *time.Time
	Companies              []string
	DocumentNumberContains string
	Statuses               []entity.ProblemDocumentStatus
}

// ListProblemDocumentsOutput represents the filtered table.
type ListProblemDocumentsOutput struct {
	Documents []*entity.ProblemDocument
}

// ListProblemDocumentsUseCase reads and filters the problem-document table.
type ListProblemDocumentsUseCase struct {
	store adapter.ProblemDocumentStore
}

// NewListProblemDocumentsUseCase creates a new ListProblemDocumentsUseCase instance.
func NewListProblemDocumentsUseCase(store adapter.ProblemDocumentStore) *ListProblemDocumentsUseCase {
	return &ListProblemDocumentsUseCase{store: store}
}

// Execute returns the matching records in stored (insertion) order; the
// ledger never resorts. Display-time sorting is a presentation concern.
func (uc *ListProblemDocumentsUseCase) Execute(ctx context.Context, input ListProblemDocumentsInput) (*ListProblemDocumentsOutput, error) {
	docs, _, err := uc.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	output := &ListProblemDocumentsOutput{}
	for _, doc := range docs {
		if !matchesFilter(doc, input) {
			continue
		}
		output.Documents = append(output.Documents, doc)
	}
	return output, nil
}

func matchesFilter(doc *entity.ProblemDocument, input ListProblemDocumentsInput) bool {
	if input.StartDate != nil && doc.VerificationDate.Before(dayStart(*input.StartDate)) {
		return false
	}
	if input.EndDate != nil && doc.VerificationDate.After(dayEnd(*input.EndDate)) {
		return false
	}
	if len(input.Companies) > 0 && !containsString(input.Companies, doc.Company) {
		return false
	}
	if input.DocumentNumberContains != "" &&
		!strings.Contains(strings.ToLower(doc.DocumentNumber), strings.ToLower(input.DocumentNumberContains)) {
		return false
	}
	if len(input.Statuses) > 0 && !containsStatus(input.Statuses, doc.Status) {
		return false
	}
	return true
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func containsString(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func containsStatus(values []entity.ProblemDocumentStatus, v entity.ProblemDocumentStatus) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
