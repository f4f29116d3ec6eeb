package problemdoc

import (
	"context"

	"github.com/google/uuid"

	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/domain/entity"
	domainerror "github.com/simrs-budget/backend/internal/domain/error"
)

// UpdateStatusInput represents a status transition request.
type UpdateStatusInput struct {
	ID     uuid.UUID
	Status entity.ProblemDocumentStatus
}

// UpdateStatusOutput represents the updated record.
type UpdateStatusOutput struct {
	Document *entity.ProblemDocument
}

// UpdateStatusUseCase toggles a problem document between PENDING and RESOLVED.
type UpdateStatusUseCase struct {
	store adapter.ProblemDocumentStore
}

// NewUpdateStatusUseCase creates a new UpdateStatusUseCase instance.
func NewUpdateStatusUseCase(store adapter.ProblemDocumentStore) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{store: store}
}

// Execute looks the record up by ID and persists the table with the new
// status. The table is re-read immediately before the write, so a stale
// identifier from a deleted record fails cleanly instead of hitting a
// neighbouring row.
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, input UpdateStatusInput) (*UpdateStatusOutput, error) {
	if !input.Status.Valid() {
		return nil, domainerror.NewProblemDocumentError(
			domainerror.ErrCodeInvalidStatus,
			"status must be PENDING or RESOLVED",
			domainerror.ErrInvalidStatus,
		)
	}

	docs, version, err := uc.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	var updated *entity.ProblemDocument
	for _, doc := range docs {
		if doc.ID == input.ID {
			doc.Status = input.Status
			updated = doc
			break
		}
	}
	if updated == nil {
		return nil, notFound(input.ID)
	}

	if err := uc.store.OverwriteAll(ctx, docs, version); err != nil {
		return nil, err
	}

	return &UpdateStatusOutput{Document: updated}, nil
}

func notFound(id uuid.UUID) error {
	return domainerror.NewProblemDocumentError(
		domainerror.ErrCodeProblemDocumentNotFound,
		"no problem document with id "+id.String(),
		domainerror.ErrProblemDocumentNotFound,
	)
}
